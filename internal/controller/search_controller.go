package controller

import (
	"errors"

	"pix-logview-be/internal/dto"
	"pix-logview-be/internal/pkg/serverutils"
	"pix-logview-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISearchController interface {
	RegisterRoutes(r fiber.Router)
	Modes(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type searchController struct {
	service service.ISearchService
}

func NewSearchController(service service.ISearchService) ISearchController {
	return &searchController{service: service}
}

func (c *searchController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/search/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("modes", c.Modes)
	h.Post("", c.Search)
}

func (c *searchController) Modes(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("Success get search modes", c.service.Modes()))
}

func (c *searchController) Search(ctx *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Search(ctx.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrDatabaseUnavailable) {
			return fiber.NewError(fiber.StatusServiceUnavailable, "Conexão com o banco de dados não estabelecida.")
		}
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search logs", res))
}
