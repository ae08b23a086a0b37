package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	profile := api.Group("/profile", handler.AuthRequired)
	profile.Get("/:userId", handler.GetProfile)
	profile.Post("/save", handler.SaveProfile)

	foodlog := api.Group("/foodlog", handler.AuthRequired)
	foodlog.Post("/add", handler.AddFoodLog)
	foodlog.Get("/:userId", handler.GetFoodLogs)
	foodlog.Delete("/:id", handler.DeleteFoodLog)

	api.Get("/dashboard", handler.AuthRequired, handler.GetDashboard)

	water := api.Group("/water", handler.AuthRequired)
	water.Get("", handler.GetWaterIntake)
	water.Post("/add", handler.AddWaterIntake)
	water.Post("/reset", handler.ResetWaterIntake)

	api.Post("/ai/chat", handler.AuthRequired, handler.Chat)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/csv", handler.ExportCSV)
}
