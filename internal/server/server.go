package server

import (
	"net/http"

	"oms/internal/config"
	"oms/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

// New はルーティング済みのechoを組み立てる
func New(cfg config.Config, logger *zap.Logger, registrars ...RouteRegistrar) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()

	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
	}))
	e.Use(requestLogger(logger))

	e.GET("/", index)
	e.GET("/health", health)

	for _, r := range registrars {
		r.RegisterRoutes(e)
	}

	return e
}

// RouteRegistrar はハンドラ群の共通インターフェース
type RouteRegistrar interface {
	RegisterRoutes(e *echo.Echo)
}

func requestLogger(logger *zap.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:    true,
		LogStatus: true,
		LogMethod: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}

func index(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "Mini EDI Order Management API",
		"endpoints": map[string]string{
			"rest":    "/api",
			"graphql": "/graphql",
			"health":  "/health",
		},
	})
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
