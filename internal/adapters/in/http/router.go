package http

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewEcho builds the echo instance with request logging, OpenAPI request
// validation on the API group and the swagger UI.
func NewEcho(ctx context.Context, server *Server, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	RegisterSwaggerDoc()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil || v.Status >= 500 {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", server.Health)
	e.GET("/api/openapi.json", server.OpenAPI)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", validator)
	api.GET("/service-orders", server.ListServiceOrders)
	api.POST("/service-orders", server.CreateServiceOrder)
	api.GET("/service-orders/:id", server.GetServiceOrder)
	api.PUT("/service-orders/:id/status", server.ChangeServiceOrderStatus)
	api.POST("/service-orders/:id/moves", server.MoveServiceOrder)
	api.POST("/service-orders/:id/actions/:action", server.ApplyQuickAction)
	api.GET("/pipeline/board", server.GetPipelineBoard)
	api.GET("/pipeline/columns", server.GetPipelineColumns)

	return e, nil
}
