package controller

import (
	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/pkg/serverutils"
	"crm-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAdminController interface {
	RegisterRoutes(r fiber.Router)
	UpdateConfig(ctx *fiber.Ctx) error
	GetStatus(ctx *fiber.Ctx) error
}

type adminController struct {
	service service.IAdminService
}

func NewAdminController(service service.IAdminService) IAdminController {
	return &adminController{service: service}
}

func (c *adminController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/admin")
	h.Post("/config", c.UpdateConfig)
	h.Get("/status", c.GetStatus)
}

func (c *adminController) UpdateConfig(ctx *fiber.Ctx) error {
	var req dto.UpdateConfigRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.UpdateConfig(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *adminController) GetStatus(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.GetStatus(ctx.Context()))
}
