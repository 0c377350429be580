package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type IFeedbackController interface {
	RegisterRoutes(r fiber.Router)
	Record(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	ItemStats(ctx *fiber.Ctx) error
}

type feedbackController struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackController(feedbackService service.IFeedbackService) IFeedbackController {
	return &feedbackController{
		feedbackService: feedbackService,
	}
}

func (c *feedbackController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/feedback/v1")
	h.Post("", c.Record)
	h.Get("user/:user_id", c.List)
	h.Get("item/:sku/stats", c.ItemStats)
}

func (c *feedbackController) Record(ctx *fiber.Ctx) error {
	var req dto.FeedbackRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.feedbackService.Record(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record feedback", res))
}

func (c *feedbackController) List(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")

	res, err := c.feedbackService.List(ctx.Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list feedback", res))
}

func (c *feedbackController) ItemStats(ctx *fiber.Ctx) error {
	sku := ctx.Params("sku")

	res, err := c.feedbackService.ItemStats(ctx.Context(), sku)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get feedback stats", res))
}
