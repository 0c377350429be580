package controller

import (
	"github.com/gofiber/fiber/v2"

	"mobile-order-be/internal/dto"
	"mobile-order-be/internal/pkg/serverutils"
	"mobile-order-be/internal/service"
)

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Start(ctx *fiber.Ctx) error
	Record(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Boost(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Start)
	h.Post(":id/interactions", c.Record)
	h.Get(":id", c.Show)
	h.Get(":id/boost/:sku", c.Boost)
}

func (c *sessionController) Start(ctx *fiber.Ctx) error {
	var req dto.StartSessionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Start(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success start session", res))
}

func (c *sessionController) Record(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	var req dto.SessionInteractionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.Record(ctx.Context(), sessionID, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success record interaction", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")

	res, err := c.sessionService.Get(ctx.Context(), sessionID)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session", res))
}

func (c *sessionController) Boost(ctx *fiber.Ctx) error {
	sessionID := ctx.Params("id")
	sku := ctx.Params("sku")

	res, err := c.sessionService.Boost(ctx.Context(), sessionID, sku)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success compute session boost", res))
}
