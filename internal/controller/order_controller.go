package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type IOrderController interface {
	RegisterRoutes(r fiber.Router)
	Place(ctx *fiber.Ctx) error
	ListByUser(ctx *fiber.Ctx) error
}

type orderController struct {
	orderService service.IOrderService
}

func NewOrderController(orderService service.IOrderService) IOrderController {
	return &orderController{
		orderService: orderService,
	}
}

func (c *orderController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/order/v1")
	h.Post("", c.Place)
	h.Get("user/:user_id", c.ListByUser)
}

func (c *orderController) Place(ctx *fiber.Ctx) error {
	var req dto.PlaceOrderRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.orderService.Place(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success place order", res))
}

func (c *orderController) ListByUser(ctx *fiber.Ctx) error {
	userID := ctx.Params("user_id")

	res, err := c.orderService.ListByUser(ctx.Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list orders", res))
}
