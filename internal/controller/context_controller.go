package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
	"mobile-order-be/pkg/recommend/rules"
)

type IContextController interface {
	RegisterRoutes(r fiber.Router)
	Current(ctx *fiber.Ctx) error
}

type contextController struct {
	contextService service.IContextService
}

func NewContextController(contextService service.IContextService) IContextController {
	return &contextController{
		contextService: contextService,
	}
}

func (c *contextController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/context/v1")
	h.Get("", c.Current)
}

func (c *contextController) Current(ctx *fiber.Ctx) error {
	var weather *rules.Weather
	if kind := ctx.Query("weather"); kind != "" || ctx.Query("temperature_c") != "" {
		weather = &rules.Weather{
			Kind:         kind,
			TemperatureC: ctx.QueryFloat("temperature_c"),
		}
	}

	res, err := c.contextService.Current(ctx.Context(), weather)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show context", res))
}
