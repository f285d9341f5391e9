// Package server wires the gateway handlers into a chi router.
package server

import (
	"net/http"

	"social-docstore/gateway"
	"social-docstore/handlers/api/publicacoes"
	"social-docstore/handlers/api/storys"
	"social-docstore/handlers/api/usuarios"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Options struct {
	AllowedOrigins []string
	// Realtime, when set, is mounted at /socket.io/.
	Realtime http.Handler
}

func NewRouter(gw *gateway.Gateway, opts Options) http.Handler {
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Length", "X-Requested-With", "Origin"},
		MaxAge:         300, // Maximum value not ignored by any of major browsers
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("you are all set"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/login", usuarios.HandleLogin(gw))

	r.Route("/user", func(r chi.Router) {
		r.Post("/cadastrarUser", usuarios.HandleCreate(gw))
		r.Get("/listarUsers", usuarios.HandleList(gw))
		r.Put("/atualizarUser/{id}", usuarios.HandleUpdate(gw))
		r.Delete("/deleteuser/{id}", usuarios.HandleDelete(gw))
		r.Post("/RememberPassword", usuarios.HandleRememberPassword(gw))
		r.Put("/newPassword/{id}", usuarios.HandleNewPassword(gw))
	})

	r.Route("/publicacoes", func(r chi.Router) {
		r.Get("/listarPublicacoes", publicacoes.HandleList(gw))
		r.Post("/cadastrarPublicacao", publicacoes.HandleCreate(gw))
		r.Put("/atualizarPublicacao/{id}", publicacoes.HandleUpdate(gw))
		r.Delete("/deletarPublicacao/{id}", publicacoes.HandleDelete(gw))
	})

	r.Route("/storys", func(r chi.Router) {
		r.Get("/listarStorys", storys.HandleList(gw))
		r.Post("/cadastrarStorys", storys.HandleCreate(gw))
		r.Post("/likeStory", storys.HandleLike(gw))
	})

	if opts.Realtime != nil {
		r.Handle("/socket.io/", opts.Realtime)
	}

	return r
}
