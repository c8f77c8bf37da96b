package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/passa-a-bola/platform/handlers"
	"github.com/passa-a-bola/platform/middleware"
	"github.com/passa-a-bola/platform/models"
)

func SetupRoutes(
	router *chi.Mux,
	jwtSecret []byte,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	registrationHandler *handlers.RegistrationHandler,
	jogadoraHandler *handlers.JogadoraHandler,
	copaHandler *handlers.CopaHandler,
	encontroHandler *handlers.EncontroHandler,
	peneirasHandler *handlers.PeneirasHandler,
	liveHandler *handlers.LiveHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	requireAuth := func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
	}
	requireAdmin := func(r chi.Router) {
		r.Use(middleware.Authenticate(jwtSecret))
		r.Use(middleware.RequireRole(models.RoleAdmin))
	}

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Group(func(r chi.Router) {
			requireAuth(r)
			r.Get("/me", userHandler.Me)
			r.Put("/perfil", userHandler.UpdateProfile)
		})
	})

	router.Route("/usuarios", func(r chi.Router) {
		requireAdmin(r)
		r.Get("/nao-jogadoras", userHandler.ListNonJogadoras)
		r.Post("/{userID}/tornar-jogadora", userHandler.MakeJogadora)
		r.Post("/{userID}/tornar-admin", userHandler.MakeAdmin)
		r.Delete("/{userID}", userHandler.Delete)
	})

	router.Route("/inscricoes", func(r chi.Router) {
		r.Post("/individual", registrationHandler.SubmitIndividual)
		r.Post("/times", registrationHandler.SubmitTeam)
		r.Post("/times/validar-jogadora", registrationHandler.CheckPlayer)
		r.Get("/times", registrationHandler.ListTeams)
		r.Get("/individuais", registrationHandler.ListIndividuals)
		r.Get("/estatisticas", registrationHandler.GetStatistics)
		r.Get("/vagas", registrationHandler.GetRemainingSlots)

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Post("/reconciliar", registrationHandler.Reconcile)
		})
	})

	router.Route("/jogadoras", func(r chi.Router) {
		r.Get("/", jogadoraHandler.List)
		r.Get("/{jogadoraID}", jogadoraHandler.GetByID)

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Post("/", jogadoraHandler.Create)
			r.Put("/{jogadoraID}", jogadoraHandler.Update)
			r.Delete("/{jogadoraID}", jogadoraHandler.Delete)
		})
	})

	router.Route("/copa", func(r chi.Router) {
		r.Get("/", copaHandler.Get)

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Put("/", copaHandler.Replace)
		})
	})

	router.Route("/encontro", func(r chi.Router) {
		r.Get("/", encontroHandler.Get)

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Put("/", encontroHandler.Update)
		})
	})

	router.Route("/peneiras", func(r chi.Router) {
		r.Get("/", peneirasHandler.List)

		r.Group(func(r chi.Router) {
			requireAdmin(r)
			r.Put("/", peneirasHandler.Replace)
		})
	})

	router.Get("/ws/inscricoes", liveHandler.ServeWs)
}
