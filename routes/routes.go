package routes

import (
	"github.com/Adfay-Inc/Puntus/handlers"
	appmw "github.com/Adfay-Inc/Puntus/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRoutes wires every HTTP endpoint onto the router. Reads on scrims,
// standings and the live socket are public; everything that mutates state
// requires a valid token.
func SetupRoutes(
	router *chi.Mux,
	auth *appmw.Authenticator,
	authHandler *handlers.AuthHandler,
	teamHandler *handlers.TeamHandler,
	scrimHandler *handlers.ScrimHandler,
	matchHandler *handlers.MatchHandler,
	resultHandler *handlers.ResultHandler,
	standingsHandler *handlers.StandingsHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/swagger/*", httpSwagger.Handler())

	router.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(auth.Authenticate).Get("/me", authHandler.Me)
	})

	router.Route("/teams", func(r chi.Router) {
		r.Get("/{teamID}", teamHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Post("/", teamHandler.Create)
			r.Put("/{teamID}", teamHandler.Update)
			r.Delete("/{teamID}", teamHandler.Delete)
			r.Post("/{teamID}/logo", teamHandler.UploadLogo)
		})
	})

	router.Route("/scrims", func(r chi.Router) {
		r.Get("/", scrimHandler.List)
		r.Get("/{scrimID}", scrimHandler.GetByID)
		r.Get("/{scrimID}/leaderboard", standingsHandler.Leaderboard)
		r.Get("/{scrimID}/results", standingsHandler.Results)
		r.Get("/{scrimID}/teams", scrimHandler.ListTeams)
		r.Get("/{scrimID}/matches", matchHandler.ListByScrim)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Post("/", scrimHandler.Create)
			r.Put("/{scrimID}", scrimHandler.Update)
			r.Patch("/{scrimID}/status", scrimHandler.UpdateStatus)
			r.Delete("/{scrimID}", scrimHandler.Delete)
			r.Post("/{scrimID}/teams", scrimHandler.Join)
			r.Delete("/{scrimID}/teams/{teamID}", scrimHandler.Leave)
			r.Post("/{scrimID}/matches", matchHandler.Create)
		})
	})

	router.Route("/matches", func(r chi.Router) {
		r.Get("/{matchID}", matchHandler.GetByID)
		r.Get("/{matchID}/results", resultHandler.ListByMatch)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Put("/{matchID}", matchHandler.Update)
			r.Post("/{matchID}/start", matchHandler.Start)
			r.Post("/{matchID}/end", matchHandler.End)
			r.Delete("/{matchID}", matchHandler.Delete)
			r.Post("/{matchID}/results", resultHandler.Report)
			r.Post("/{matchID}/results/bulk", resultHandler.ReportBulk)
		})
	})

	router.Route("/results", func(r chi.Router) {
		r.Get("/{resultID}", resultHandler.GetByID)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticate)
			r.Put("/{resultID}", resultHandler.Update)
			r.Delete("/{resultID}", resultHandler.Delete)
		})
	})

	router.Get("/ws/scrims/{scrimID}", webSocketHandler.ServeScrim)
}
