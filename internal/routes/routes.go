package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/athly-global/athly-api/internal/config"
	"github.com/athly-global/athly-api/internal/handlers"
	"github.com/athly-global/athly-api/internal/services"
	"github.com/athly-global/athly-api/internal/store"
)

func RegisterRoutes(app *fiber.App, cfg *config.Config, st store.Store) {
	searchService := services.NewTrainerSearchService(st)

	signupHandler := handlers.NewSignupHandler(st)
	searchHandler := handlers.NewTrainerSearchHandler(searchService)
	systemHandler := handlers.NewSystemHandler(cfg, st)

	app.Get("/", systemHandler.Root)
	app.Get("/test", systemHandler.TestDatabase)
	app.Get("/schema", systemHandler.Schema)

	app.Post("/waitlist", signupHandler.JoinWaitlist)
	app.Post("/client/signup", signupHandler.ClientSignup)
	app.Post("/trainer/signup", signupHandler.TrainerSignup)

	app.Post("/trainers/search", searchHandler.SearchTrainers)
	app.Get("/trainers/featured", searchHandler.FeaturedTrainers)
}
