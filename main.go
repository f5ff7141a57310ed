package main

import (
	"log"

	"staffdesk/config"
	"staffdesk/database"
	"staffdesk/handlers"
	"staffdesk/repositories"
	"staffdesk/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Database connection successfully opened.")

	engine := html.New("./views", ".html")

	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	app.Use(recover.New())
	app.Use(logger.New())

	userStore := repositories.NewGormUserStore(db)
	employeeStore := repositories.NewGormEmployeeStore(db)
	taskStore := repositories.NewGormTaskStore(db)

	auth := handlers.NewAuthHandler(userStore, cfg.SecretKey, cfg.SessionHours)
	dashboard := handlers.NewDashboardHandler(employeeStore, taskStore)
	employees := handlers.NewEmployeeHandler(employeeStore)
	tasks := handlers.NewTaskHandler(taskStore, employeeStore)

	routes.Setup(app, auth, dashboard, employees, tasks, cfg.SecretKey)

	log.Fatal(app.Listen(":" + cfg.Port))
}
