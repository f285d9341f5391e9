// Package api holds the request decoding and response helpers shared by the
// collection handlers.
package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"social-docstore/core"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

const (
	msgInvalidID   = "ID inválido"
	msgInvalidBody = "Corpo da requisição inválido"
)

type (
	MessageResponse struct {
		Message string `json:"message"`
	}

	ErrorResponse struct {
		Message string `json:"message"`
		Error   string `json:"error,omitempty"`
	}
)

// DecodeJSON decodes the request body into v. An empty body leaves v at its
// zero value so the operation reports the missing fields itself.
func DecodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	err := render.DecodeJSON(r.Body, v)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}
	logrus.WithField("error", err).Debug("Rejected request body")
	Respond(w, r, http.StatusBadRequest, MessageResponse{Message: msgInvalidBody})
	return false
}

// ParseID reads the {id} path parameter, answering 400 when it is not an integer.
func ParseID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		Respond(w, r, http.StatusBadRequest, MessageResponse{Message: msgInvalidID})
		return 0, false
	}
	return id, true
}

func Respond(w http.ResponseWriter, r *http.Request, status int, v any) {
	render.Status(r, status)
	render.JSON(w, r, v)
}

// StatusFor maps an error code to its HTTP status. A duplicate like is a
// client error, not a 409.
func StatusFor(err error) int {
	switch core.CodeOf(err) {
	case core.CodeValidation, core.CodeConflict:
		return http.StatusBadRequest
	case core.CodeNotFound:
		return http.StatusNotFound
	case core.CodeUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RespondError writes err as {"message": ...}; internal errors also carry
// the underlying cause in "error".
func RespondError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	var appErr *core.AppError
	if !errors.As(err, &appErr) {
		appErr = core.NewInternalError("Erro interno", err)
	}

	resp := ErrorResponse{Message: appErr.Message}
	if status == http.StatusInternalServerError && appErr.Err != nil {
		resp.Error = appErr.Err.Error()
	}
	Respond(w, r, status, resp)
}
