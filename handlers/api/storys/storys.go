package storys

import (
	"context"
	"net/http"

	"social-docstore/core"
	"social-docstore/gateway"
	"social-docstore/handlers/api"
)

const msgLikeAdded = "Curtida adicionada com sucesso"

type (
	Service interface {
		ListStorys(ctx context.Context) ([]core.Story, error)
		CreateStory(ctx context.Context, in gateway.PostFields) (core.Story, error)
		LikeStory(ctx context.Context, in gateway.LikeInput) (core.Story, error)
	}

	LikeResponse struct {
		Message string     `json:"message"`
		Story   core.Story `json:"story"`
	}
)

func HandleList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		storys, err := svc.ListStorys(r.Context())
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, storys)
	}
}

func HandleCreate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.PostFields
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		story, err := svc.CreateStory(r.Context(), in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusCreated, story)
	}
}

func HandleLike(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.LikeInput
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		story, err := svc.LikeStory(r.Context(), in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, LikeResponse{Message: msgLikeAdded, Story: story})
	}
}
