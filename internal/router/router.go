package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/tasktrack/backend/api/handler"
)

type Handlers struct {
	Booking    *apiHandler.BookingHandler
	Task       *apiHandler.TaskHandler
	Tag        *apiHandler.TagHandler
	Importance *apiHandler.ImportanceHandler
	Health     *apiHandler.HealthHandler
}

// New builds the route table. Reads are open; mutations go through the guard
// middleware, which is a pass-through when no auth secret is configured.
func New(handlers Handlers, guard func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Booking domain
	r.GET("/api/v1/bookings", handlers.Booking.GetBookings)
	r.GET("/api/v1/bookings/{id}", handlers.Booking.GetBooking)
	r.POST("/api/v1/bookings", guard(handlers.Booking.CreateBooking))
	r.PATCH("/api/v1/bookings/{id}", guard(handlers.Booking.PatchBooking))
	r.POST("/api/v1/bookings/{id}/finish", guard(handlers.Booking.FinishBooking))
	r.DELETE("/api/v1/bookings/{id}", guard(handlers.Booking.DeleteBooking))
	r.GET("/api/v1/bookings/{id}/tags", handlers.Booking.GetBookingTags)
	r.POST("/api/v1/bookings/{id}/tags", guard(handlers.Booking.AssignTag))
	r.DELETE("/api/v1/bookings/{id}/tags/{tagID}", guard(handlers.Booking.UnassignTag))

	// Task domain
	r.GET("/api/v1/tasks", handlers.Task.GetTasks)
	r.GET("/api/v1/tasks/{id}", handlers.Task.GetTask)
	r.POST("/api/v1/tasks", guard(handlers.Task.CreateTask))
	r.PATCH("/api/v1/tasks/{id}", guard(handlers.Task.PatchTask))
	r.POST("/api/v1/tasks/{id}/done", guard(handlers.Task.SetDone))
	r.POST("/api/v1/tasks/{id}/time", guard(handlers.Task.AddTime))
	r.DELETE("/api/v1/tasks/{id}", guard(handlers.Task.DeleteTask))
	r.GET("/api/v1/tasks/{id}/tags", handlers.Task.GetTaskTags)
	r.POST("/api/v1/tasks/{id}/tags", guard(handlers.Task.AssignTag))
	r.DELETE("/api/v1/tasks/{id}/tags/{tagID}", guard(handlers.Task.UnassignTag))

	// Shared vocabulary
	r.GET("/api/v1/tags", handlers.Tag.GetTags)
	r.GET("/api/v1/tags/{id}", handlers.Tag.GetTag)
	r.POST("/api/v1/tags", guard(handlers.Tag.CreateTag))
	r.PATCH("/api/v1/tags/{id}", guard(handlers.Tag.PatchTag))
	r.DELETE("/api/v1/tags/{id}", guard(handlers.Tag.DeleteTag))

	r.GET("/api/v1/importance", handlers.Importance.GetLevels)
	r.GET("/api/v1/importance/{id}", handlers.Importance.GetLevel)
	r.POST("/api/v1/importance", guard(handlers.Importance.CreateLevel))
	r.PATCH("/api/v1/importance/{id}", guard(handlers.Importance.PatchLevel))
	r.DELETE("/api/v1/importance/{id}", guard(handlers.Importance.DeleteLevel))

	return r
}
