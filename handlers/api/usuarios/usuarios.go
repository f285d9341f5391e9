package usuarios

import (
	"context"
	"net/http"

	"social-docstore/core"
	"social-docstore/gateway"
	"social-docstore/handlers/api"
)

type (
	Service interface {
		Authenticate(ctx context.Context, in gateway.Credentials) error
		CreateUser(ctx context.Context, in gateway.NewUser) (core.User, error)
		ListUsers(ctx context.Context) ([]core.PublicUser, error)
		UpdateUser(ctx context.Context, id int, in gateway.UserPatch) (core.User, error)
		DeleteUser(ctx context.Context, id int) error
		RecoverPassword(ctx context.Context, in gateway.PasswordRecovery) (core.User, error)
		SetPassword(ctx context.Context, id int, in gateway.NewPassword) (core.User, error)
	}

	LoginResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message,omitempty"`
	}
)

func HandleLogin(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.Credentials
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		if err := svc.Authenticate(r.Context(), in); err != nil {
			if core.CodeOf(err) == core.CodeUnauthorized {
				api.Respond(w, r, http.StatusUnauthorized, LoginResponse{Success: false, Message: err.Error()})
				return
			}
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, LoginResponse{Success: true})
	}
}

func HandleCreate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.NewUser
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		user, err := svc.CreateUser(r.Context(), in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusCreated, user)
	}
}

func HandleList(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, users)
	}
}

func HandleUpdate(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api.ParseID(w, r)
		if !ok {
			return
		}
		var in gateway.UserPatch
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		user, err := svc.UpdateUser(r.Context(), id, in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, user)
	}
}

func HandleDelete(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api.ParseID(w, r)
		if !ok {
			return
		}
		if err := svc.DeleteUser(r.Context(), id); err != nil {
			api.RespondError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func HandleRememberPassword(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in gateway.PasswordRecovery
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		user, err := svc.RecoverPassword(r.Context(), in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, user)
	}
}

func HandleNewPassword(svc Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api.ParseID(w, r)
		if !ok {
			return
		}
		var in gateway.NewPassword
		if !api.DecodeJSON(w, r, &in) {
			return
		}
		user, err := svc.SetPassword(r.Context(), id, in)
		if err != nil {
			api.RespondError(w, r, err)
			return
		}
		api.Respond(w, r, http.StatusOK, user)
	}
}
