package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/joinboard/backend/api/handler"
)

type Handlers struct {
	Auth    *apiHandler.AuthHandler
	Contact *apiHandler.ContactHandler
	Task    *apiHandler.TaskHandler
	Subtask *apiHandler.SubtaskHandler
	Health  *apiHandler.HealthHandler
}

func New(handlers Handlers, auth func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Auth routes
	r.POST("/registration/", handlers.Auth.Register)
	r.POST("/login/", handlers.Auth.Login)

	// Board routes; auth attaches the actor, the gates decide access
	r.GET("/contacts/", auth(handlers.Contact.List))
	r.POST("/contacts/", auth(handlers.Contact.Create))
	r.GET("/contacts/{id}/", auth(handlers.Contact.Get))
	r.PUT("/contacts/{id}/", auth(handlers.Contact.Update))
	r.DELETE("/contacts/{id}/", auth(handlers.Contact.Delete))

	r.GET("/tasks/", auth(handlers.Task.List))
	r.POST("/tasks/", auth(handlers.Task.Create))
	r.GET("/tasks/{id}/", auth(handlers.Task.Get))
	r.PUT("/tasks/{id}/", auth(handlers.Task.Update))
	r.DELETE("/tasks/{id}/", auth(handlers.Task.Delete))
	r.GET("/tasks/{id}/contacts/", auth(handlers.Task.ListContacts))
	r.POST("/tasks/{id}/contacts/", auth(handlers.Task.AssignContacts))

	r.GET("/subtasks/", auth(handlers.Subtask.List))
	r.POST("/subtasks/", auth(handlers.Subtask.Create))
	r.GET("/subtasks/{id}/", auth(handlers.Subtask.Get))
	r.PUT("/subtasks/{id}/", auth(handlers.Subtask.Update))
	r.DELETE("/subtasks/{id}/", auth(handlers.Subtask.Delete))

	return r
}
