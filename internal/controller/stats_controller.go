package controller

import (
	"errors"
	"strconv"
	"strings"

	"pix-logview-be/internal/model"
	"pix-logview-be/internal/pkg/serverutils"
	"pix-logview-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IStatsController interface {
	RegisterRoutes(r fiber.Router)
	EntriesPerMinute(ctx *fiber.Ctx) error
	Operations(ctx *fiber.Ctx) error
	Errors(ctx *fiber.Ctx) error
	Performance(ctx *fiber.Ctx) error
}

type statsController struct {
	service service.IStatsService
}

func NewStatsController(service service.IStatsService) IStatsController {
	return &statsController{service: service}
}

func (c *statsController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/stats/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("entries-per-minute", c.EntriesPerMinute)
	h.Get("operations", c.Operations)
	h.Get("errors", c.Errors)
	h.Get("performance", c.Performance)
}

func mapStatsError(err error) error {
	if errors.Is(err, service.ErrDatabaseUnavailable) {
		return fiber.NewError(fiber.StatusServiceUnavailable, "Conexão com o banco de dados não estabelecida.")
	}
	return err
}

func (c *statsController) EntriesPerMinute(ctx *fiber.Ctx) error {
	res, err := c.service.EntriesPerMinute(ctx.Context())
	if err != nil {
		return mapStatsError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get entries per minute", res))
}

func (c *statsController) Operations(ctx *fiber.Ctx) error {
	hours := 24
	if raw := ctx.Query("hours"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "hours must be an integer")
		}
		hours = parsed
	}

	var functions []string
	if raw := ctx.Query("functions"); raw != "" {
		for _, f := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(f); trimmed != "" {
				functions = append(functions, trimmed)
			}
		}
	}

	res, err := c.service.OperationsPerFunction(ctx.Context(), hours, functions)
	if err != nil {
		if errors.Is(err, service.ErrDatabaseUnavailable) {
			return mapStatsError(err)
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get operations per function", res))
}

func (c *statsController) Errors(ctx *fiber.Ctx) error {
	res, err := c.service.LatestErrors(ctx.Context())
	if err != nil {
		return mapStatsError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get latest errors", res))
}

func (c *statsController) Performance(ctx *fiber.Ctx) error {
	window := model.PerformanceWindow(ctx.Query("window", string(model.WindowLast24h)))
	if window != model.WindowLast24h && window != model.WindowLast100k {
		return fiber.NewError(fiber.StatusBadRequest, "window must be one of: 24h, 100k")
	}

	res, err := c.service.Performance(ctx.Context(), window)
	if err != nil {
		return mapStatsError(err)
	}
	return ctx.JSON(serverutils.SuccessResponse("Success get performance summary", res))
}
