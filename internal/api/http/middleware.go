package http

import (
	"context"
	"runtime/debug"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/spec-kit/contact-service/internal/observability"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

// MiddlewareConfig controls global middlewares.
type MiddlewareConfig struct {
	Timeout      time.Duration
	AllowOrigins string
}

// RegisterMiddlewares attaches global middlewares such as error handling and logging.
// Errors are rendered innermost so the request logger sees the final status.
func RegisterMiddlewares(app *fiber.App, logger *zap.Logger, metrics *observability.Metrics, cfg MiddlewareConfig) {
	app.Use(requestid.New())
	app.Use(cors.New(corsConfig(cfg.AllowOrigins)))
	app.Use(observability.RequestLogger(logger, metrics))
	if cfg.Timeout > 0 {
		app.Use(requestTimeoutMiddleware(cfg.Timeout))
	}
	app.Use(errorHandlingMiddleware(logger, metrics))
}

func corsConfig(origins string) cors.Config {
	cfg := cors.ConfigDefault
	if origins != "" {
		cfg.AllowOrigins = origins
	}
	cfg.AllowHeaders = "Origin, Content-Type, Accept, Authorization"
	return cfg
}

func requestTimeoutMiddleware(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), timeout)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}

func errorHandlingMiddleware(logger *zap.Logger, metrics *observability.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
				err = apperrors.NewInternalError(nil)
			}
			if err != nil {
				domainErr := apperrors.ToDomainError(err)
				metrics.RecordError(c.Route().Path, c.Method(), domainErr.Code)
				if domainErr.HTTPStatus >= 500 {
					logger.Error("request failed", zap.Error(domainErr))
				}
				c.Status(domainErr.HTTPStatus)
				_ = c.JSON(errorResponse(domainErr))
				err = nil
			}
		}()
		return c.Next()
	}
}

func errorResponse(domainErr *apperrors.DomainError) fiber.Map {
	response := fiber.Map{
		"success": false,
		"message": domainErr.Message,
	}
	if len(domainErr.Errors) > 0 {
		response["errors"] = domainErr.Errors
	}
	if domainErr.Reason != "" {
		response["error"] = domainErr.Reason
	}
	return response
}
