package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type IExperimentController interface {
	RegisterRoutes(r fiber.Router)
	Assign(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type experimentController struct {
	experimentService service.IExperimentService
}

func NewExperimentController(experimentService service.IExperimentService) IExperimentController {
	return &experimentController{
		experimentService: experimentService,
	}
}

func (c *experimentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/experiment/v1")
	h.Post("assign", c.Assign)
	h.Get("", c.List)
	h.Get(":id/stats", c.Stats)
}

func (c *experimentController) Assign(ctx *fiber.Ctx) error {
	var req dto.AssignVariantRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.experimentService.Assign(ctx.Context(), req.ExperimentID, req.UserID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success assign variant", res))
}

func (c *experimentController) List(ctx *fiber.Ctx) error {
	res, err := c.experimentService.List(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list experiments", res))
}

func (c *experimentController) Stats(ctx *fiber.Ctx) error {
	experimentID := ctx.Params("id")

	res, err := c.experimentService.Stats(ctx.Context(), experimentID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show experiment stats", res))
}
