package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"social-docstore/core"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		err      error
		expected int
	}{
		{core.NewValidationError("x"), http.StatusBadRequest},
		{core.NewConflictError("x"), http.StatusBadRequest},
		{core.NewNotFoundError("x"), http.StatusNotFound},
		{core.NewUnauthorizedError("x"), http.StatusUnauthorized},
		{core.NewInternalError("x", errors.New("y")), http.StatusInternalServerError},
		{errors.New("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, StatusFor(tt.err), tt.err.Error())
	}
}

func TestRespondError_InternalCarriesDetail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondError(w, r, core.NewInternalError("failed to save database", errors.New("disk full")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body ErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	assert.Equal(t, "failed to save database", body.Message)
	assert.Equal(t, "disk full", body.Error)
}

func TestRespondError_ClientErrorHasNoDetail(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondError(w, r, core.NewNotFoundError("Usuário não encontrado"))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"message":"Usuário não encontrado"}`, w.Body.String())
}

func TestParseID(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := ParseID(w, r)
		if !ok {
			return
		}
		Respond(w, r, http.StatusOK, map[string]int{"id": id})
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/12", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":12}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"ID inválido"}`, w.Body.String())

	for _, raw := range []string{"12abc", "1.5", "%20"} {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code, raw)
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Email string `json:"email"`
	}

	w := httptest.NewRecorder()
	assert.True(t, DecodeJSON(w, httptest.NewRequest(http.MethodPost, "/", nil), &v))
	assert.Empty(t, v.Email)

	assert.True(t, DecodeJSON(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@x.com"}`)), &v))
	assert.Equal(t, "a@x.com", v.Email)

	w = httptest.NewRecorder()
	assert.False(t, DecodeJSON(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":`)), &v))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
