package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type IMenuController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Similar(ctx *fiber.Ctx) error
	Quote(ctx *fiber.Ctx) error
	Options(ctx *fiber.Ctx) error
}

type menuController struct {
	menuService service.IMenuService
}

func NewMenuController(menuService service.IMenuService) IMenuController {
	return &menuController{
		menuService: menuService,
	}
}

func (c *menuController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/menu/v1")
	h.Get("", c.List)
	h.Post("quote", c.Quote)
	h.Get(":sku", c.Show)
	h.Get(":sku/similar", c.Similar)
	h.Get(":sku/options", c.Options)
}

func (c *menuController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category")
	query := ctx.Query("q")

	res, err := c.menuService.List(ctx.Context(), category, query)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list menu", res))
}

func (c *menuController) Show(ctx *fiber.Ctx) error {
	sku := ctx.Params("sku")

	res, err := c.menuService.Show(ctx.Context(), sku)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show menu item", res))
}

func (c *menuController) Similar(ctx *fiber.Ctx) error {
	sku := ctx.Params("sku")
	limit := ctx.QueryInt("limit")

	res, err := c.menuService.Similar(ctx.Context(), sku, limit)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list similar items", res))
}

func (c *menuController) Quote(ctx *fiber.Ctx) error {
	var req dto.PriceQuoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.menuService.Quote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success quote price", res))
}

func (c *menuController) Options(ctx *fiber.Ctx) error {
	sku := ctx.Params("sku")

	res, err := c.menuService.Options(ctx.Context(), sku)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list customization options", res))
}
