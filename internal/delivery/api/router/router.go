// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"petnfc/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

// legacyNotifyPath is where the tag page posted alerts when it ran as a serverless function.
const legacyNotifyPath = "/.netlify/functions/notify-whatsapp"

type RouterParams struct {
	fx.In

	NotifyHandler *handler.NotifyHandler
	PetHandler    *handler.PetHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	notifyHandler *handler.NotifyHandler
	petHandler    *handler.PetHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		notifyHandler: params.NotifyHandler,
		petHandler:    params.PetHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Any method reaches the handler so it can answer 405 in the API's own error format
	e.Any(legacyNotifyPath, r.notifyHandler.Notify)

	apiV1 := e.Group("/api/v1")
	{
		apiV1.Any("/notify", r.notifyHandler.Notify)
		apiV1.GET("/pets/:id", r.petHandler.GetPet)
		apiV1.GET("/pets/:id/qr", r.petHandler.GetTagQR)
	}
}
