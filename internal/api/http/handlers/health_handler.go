package handlers

import (
	"context"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/contact-service/internal/observability"
	apperrors "github.com/spec-kit/contact-service/pkg/util/errorutil"
)

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler responds to liveness and readiness probes.
type HealthHandler struct {
	serviceName string
	version     string
	deps        map[string]Pinger
	metrics     *observability.Metrics
}

// NewHealthHandler returns a new handler instance. Nil dependencies are skipped.
func NewHealthHandler(serviceName, version string, metrics *observability.Metrics, deps map[string]Pinger) *HealthHandler {
	filtered := make(map[string]Pinger, len(deps))
	for name, dep := range deps {
		if dep != nil {
			filtered[name] = dep
		}
	}
	return &HealthHandler{serviceName: serviceName, version: version, deps: filtered, metrics: metrics}
}

// Index describes the API.
func (h *HealthHandler) Index(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": h.serviceName + " is running",
		"version": h.version,
		"endpoints": fiber.Map{
			"auth": fiber.Map{
				"login":    "POST /api/auth/login",
				"register": "POST /api/auth/register",
				"profile":  "GET /api/auth/profile",
			},
			"contacts": fiber.Map{
				"list":   "GET /api/contacts",
				"get":    "GET /api/contacts/:id",
				"create": "POST /api/contacts",
				"update": "PUT /api/contacts/:id",
				"delete": "DELETE /api/contacts/:id",
			},
		},
	})
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	names := make([]string, 0, len(h.deps))
	for name := range h.deps {
		names = append(names, name)
	}
	sort.Strings(names)

	depStatus := fiber.Map{}
	var failed []apperrors.FieldError
	for _, name := range names {
		if err := h.deps[name].Ping(ctx); err != nil {
			depStatus[name] = err.Error()
			failed = append(failed, apperrors.FieldError{Field: name, Message: err.Error()})
			continue
		}
		depStatus[name] = "ok"
	}

	if len(failed) == 0 {
		return ok(c, fiber.StatusOK, "", fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"success": false,
		"message": "one or more dependencies unavailable",
		"errors":  failed,
	})
}

// Metrics dumps request counters.
func (h *HealthHandler) Metrics(c *fiber.Ctx) error {
	return ok(c, fiber.StatusOK, "", h.metrics.Snapshot())
}
