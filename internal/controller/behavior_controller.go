package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type IBehaviorController interface {
	RegisterRoutes(r fiber.Router)
	RecordEvent(ctx *fiber.Ctx) error
	Profile(ctx *fiber.Ctx) error
	ItemBoost(ctx *fiber.Ctx) error
}

type behaviorController struct {
	behaviorService service.IBehaviorService
}

func NewBehaviorController(behaviorService service.IBehaviorService) IBehaviorController {
	return &behaviorController{
		behaviorService: behaviorService,
	}
}

func (c *behaviorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/behavior/v1")
	h.Post("events", c.RecordEvent)
	h.Get("profile/:user_id", c.Profile)
	h.Get("profile/:user_id/boost/:sku", c.ItemBoost)
}

func (c *behaviorController) RecordEvent(ctx *fiber.Ctx) error {
	var req dto.RecordEventRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.behaviorService.RecordEvent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record event", res))
}

func (c *behaviorController) Profile(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")

	res, err := c.behaviorService.GetProfile(ctx.Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show profile", res))
}

func (c *behaviorController) ItemBoost(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")
	sku := ctx.Params("sku")

	res, err := c.behaviorService.ItemBoost(ctx.Context(), userID, sku)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success compute item boost", res))
}
