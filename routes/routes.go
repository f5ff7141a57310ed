package routes

import (
	"staffdesk/handlers"
	"staffdesk/middleware"

	"github.com/gofiber/fiber/v2"
)

// Setup registers the public auth routes and the guarded application
// routes.
func Setup(
	app *fiber.App,
	auth *handlers.AuthHandler,
	dashboard *handlers.DashboardHandler,
	employees *handlers.EmployeeHandler,
	tasks *handlers.TaskHandler,
	secret string,
) {
	app.Get("/signup", auth.ShowSignup)
	app.Post("/signup", auth.Signup)
	app.Get("/login", auth.ShowLogin)
	app.Post("/login", auth.Login)
	app.Get("/logout", auth.Logout)

	guard := middleware.RequireLogin(secret)

	app.Get("/", guard, dashboard.Show)

	emp := app.Group("/employees", guard)
	emp.Get("/", employees.List)
	emp.Get("/new", employees.ShowCreate)
	emp.Post("/new", employees.Create)
	emp.Get("/:id/edit", employees.ShowEdit)
	emp.Post("/:id/edit", employees.Edit)
	emp.Post("/:id/delete", employees.Delete)

	tsk := app.Group("/tasks", guard)
	tsk.Get("/", tasks.List)
	tsk.Get("/new", tasks.ShowCreate)
	tsk.Post("/new", tasks.Create)
	tsk.Get("/:id/edit", tasks.ShowEdit)
	tsk.Post("/:id/edit", tasks.Edit)
	tsk.Post("/:id/delete", tasks.Delete)
}
