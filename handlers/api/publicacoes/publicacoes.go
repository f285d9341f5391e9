package publicacoes

import (
	"context"
	"net/http"

	"social-docstore/core"
	"social-docstore/gateway"
	"social-docstore/handlers/api"
)

type Service interface {
	ListPublicacoes(ctx context.Context) ([]core.Publicacao, error)
	CreatePublicacao(ctx context.Context, in gateway.PostFields) (core.Publicacao, error)
	UpdatePublicacao(ctx context.Context, id int, in gateway.PostFields) (core.Publicacao, error)
	DeletePublicacao(ctx context.Context, id int) error
}

func HandleList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publicacoes, err := svc.ListPublicacoes(r.Context())
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, publicacoes)
	}
}

func HandleCreate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.PostFields
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		publicacao, err := svc.CreatePublicacao(r.Context(), in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusCreated, publicacao)
	}
}

func HandleUpdate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api.ParseID(w, r)
		if !ok {
			return
		}
		var in gateway.PostFields
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		publicacao, err := svc.UpdatePublicacao(r.Context(), id, in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, publicacao)
	}
}

func HandleDelete(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api.ParseID(w, r)
		if !ok {
			return
		}
		if err := svc.DeletePublicacao(r.Context(), id); err != nil {
			api.RespondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
