package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type IPresetController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Apply(ctx *fiber.Ctx) error
}

type presetController struct {
	presetService service.IPresetService
}

func NewPresetController(presetService service.IPresetService) IPresetController {
	return &presetController{
		presetService: presetService,
	}
}

func (c *presetController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/preset/v1")
	h.Post("", c.Create)
	h.Post("apply", c.Apply)
	h.Get("user/:user_id", c.List)
	h.Delete(":id", c.Delete)
}

func (c *presetController) Create(ctx *fiber.Ctx) error {
	var req dto.CreatePresetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presetService.Create(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create preset", res))
}

func (c *presetController) List(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")

	res, err := c.presetService.List(ctx.Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list presets", res))
}

func (c *presetController) Delete(ctx *fiber.Ctx) error {
	presetID := ctx.Params("id")
	userID := ctx.Query("user_id")

	if err := c.presetService.Delete(ctx.Context(), userID, presetID); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete preset", fiber.Map{"deleted": true}))
}

func (c *presetController) Apply(ctx *fiber.Ctx) error {
	var req dto.ApplyPresetRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.presetService.Apply(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success apply preset", res))
}
