package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH"},
		AllowedHeaders:   []string{"*"},
	}))

	// routes without authorization
	router.Route("/auth", func(r chi.Router) {
		r.Use(h.limiter.Limit("auth"))
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/confirm_email/{token}", h.confirmEmail)
	})

	// protected routes
	router.Route("/contacts", func(r chi.Router) {
		r.Use(h.limiter.Limit("contacts"))
		r.Use(h.auth)
		r.Post("/", h.createContact)
		r.Get("/", h.listContacts)
		r.Get("/search", h.searchContacts)
		r.Get("/upcoming_birthdays", h.upcomingBirthdays)
		r.Patch("/avatar", h.updateAvatar)
		r.Get("/{contactID}", h.getContact)
		r.Put("/{contactID}", h.updateContact)
		r.Delete("/{contactID}", h.deleteContact)
	})

	return router
}
