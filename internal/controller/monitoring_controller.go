package controller

import (
	"customer-notes-be/internal/dto"
	"customer-notes-be/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"
)

const apiVersion = "1.0.0"

var apiFeatures = []string{
	"structured_logging",
	"rate_limiting",
	"metrics",
	"request_id",
}

type IMonitoringController interface {
	RegisterRoutes(r fiber.Router)
	Health(ctx *fiber.Ctx) error
	Version(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
}

type monitoringController struct {
	collector *metrics.Collector
}

func NewMonitoringController(collector *metrics.Collector) IMonitoringController {
	return &monitoringController{collector: collector}
}

func (c *monitoringController) RegisterRoutes(r fiber.Router) {
	r.Get("/health", c.Health)
	r.Get("/version", c.Version)
	r.Get("/metrics", c.Metrics)
}

func (c *monitoringController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(&dto.HealthResponse{Status: "ok"})
}

func (c *monitoringController) Version(ctx *fiber.Ctx) error {
	return ctx.JSON(&dto.VersionResponse{
		Version:  apiVersion,
		Features: apiFeatures,
	})
}

func (c *monitoringController) Metrics(ctx *fiber.Ctx) error {
	return ctx.JSON(c.collector.GetSnapshot())
}
