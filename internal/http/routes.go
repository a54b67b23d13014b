package http

import (
	"time"

	"github.com/labstack/echo/v4"

	middleware "microtask-market.com/microtask-market/internal/http/middlewares"
)

// Register wires the four role surfaces. Role and ownership checks
// live in the services; the route groups only resolve the actor.
func Register(e *echo.Echo, h *Handler, rateLimitPerMinute int, jwtSecret string) {
	e.Use(middleware.RateLimiter(rateLimitPerMinute, time.Minute))

	// Public task board.
	tasks := e.Group("/api/tasks")
	tasks.GET("", h.BrowseTasks)
	tasks.GET("/categories/list", h.ListCategories)
	tasks.GET("/skills/list", h.ListSkills)
	tasks.GET("/:id", h.GetOpenTask)

	auth := middleware.Actor(jwtSecret)

	worker := e.Group("/api/worker", auth)
	worker.GET("/profile", h.GetWorkerProfile)
	worker.PUT("/profile", h.UpdateWorkerProfile)
	worker.POST("/tasks/:taskId/apply", h.ApplyToTask)
	worker.GET("/applications", h.ListWorkerApplications)
	worker.GET("/assigned-tasks", h.ListAssignedTasks)
	worker.POST("/tasks/:taskId/submit", h.SubmitWork)
	worker.GET("/submissions", h.ListWorkerSubmissions)
	worker.GET("/earnings", h.WorkerEarnings)

	company := e.Group("/api/company", auth)
	company.GET("/profile", h.GetCompanyProfile)
	company.PUT("/profile", h.UpdateCompanyProfile)
	company.POST("/tasks", h.CreateTask)
	company.GET("/tasks", h.ListCompanyTasks)
	company.GET("/tasks/:id", h.GetCompanyTask)
	company.PUT("/tasks/:id", h.UpdateTask)
	company.GET("/tasks/:taskId/applications", h.ListTaskApplications)
	company.PUT("/applications/:id/accept", h.AcceptApplication)
	company.PUT("/applications/:id/reject", h.RejectApplication)
	company.GET("/tasks/:taskId/submissions", h.ListTaskSubmissions)
	company.PUT("/submissions/:id/review", h.ReviewSubmission)
	company.PUT("/payments/:id/confirm", h.ConfirmPayment)
	company.GET("/payments", h.ListCompanyPayments)

	admin := e.Group("/api/admin", auth)
	admin.GET("/tasks", h.ListAllTasks)
	admin.PUT("/tasks/:id/approve", h.ApproveTask)
	admin.PUT("/tasks/:id/reject", h.RejectTask)
	admin.DELETE("/tasks/:id", h.DeleteTask)
	admin.PUT("/companies/:id/verify", h.VerifyCompany)
	admin.GET("/payments", h.ListAllPayments)
}
