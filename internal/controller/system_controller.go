package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"style-match-be/internal/dto"
)

var serviceRoutes = []string{
	"/health",
	"/metrics",
	"/auth/pinterest/start",
	"/auth/pinterest/callback",
	"/api/pinterest/status",
	"/api/pinterest/boards",
	"/api/pinterest/import-board",
	"/api/ai/rank-products",
}

type ISystemController interface {
	RegisterRoutes(r fiber.Router)
	Index(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type systemController struct {
	oauthConfigured bool
	registry        *prometheus.Registry
}

func NewSystemController(oauthConfigured bool, registry *prometheus.Registry) ISystemController {
	return &systemController{oauthConfigured: oauthConfigured, registry: registry}
}

func (c *systemController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Index)
	r.Get("/health", c.Health)
	if c.registry != nil {
		r.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})))
	}
}

func (c *systemController) Index(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.IndexResponse{
		Name:    "Style Match Server",
		Message: "Server is running. Start OAuth at /auth/pinterest/start",
		Routes:  serviceRoutes,
	})
}

func (c *systemController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(dto.HealthResponse{Ok: true, OauthConfigured: c.oauthConfigured})
}
