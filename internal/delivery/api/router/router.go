// Package router wires the alert API routes.
package router

import (
	"pricealert/internal/delivery/api/middleware"
	"pricealert/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler   *handler.AlertHandler
	AuthMiddleware *middleware.AuthMiddleware
}

type router struct {
	alertHandler   *handler.AlertHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:   params.AlertHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	alerts := e.Group("/alerts")
	alerts.Use(r.authMiddleware.Authenticate)
	{
		alerts.POST("", r.alertHandler.CreateAlert)
		alerts.GET("", r.alertHandler.ListAlerts)

		alerts.GET("/statistics", r.alertHandler.GetStatistics)
		alerts.POST("/process", r.alertHandler.ProcessAlerts)
		alerts.POST("/batch", r.alertHandler.ProcessBatch)

		alerts.GET("/:id", r.alertHandler.GetAlert)
		alerts.PATCH("/:id", r.alertHandler.UpdateAlert)
		alerts.DELETE("/:id", r.alertHandler.DeleteAlert)
		alerts.GET("/:id/report", r.alertHandler.GetAlertReport)
	}
}
