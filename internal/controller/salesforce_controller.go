package controller

import (
	"crm-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISalesforceController interface {
	RegisterRoutes(r fiber.Router)
	GetLeads(ctx *fiber.Ctx) error
	GetCases(ctx *fiber.Ctx) error
}

type salesforceController struct {
	service service.ICRMService
}

func NewSalesforceController(service service.ICRMService) ISalesforceController {
	return &salesforceController{service: service}
}

func (c *salesforceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/salesforce")
	h.Get("/leads", c.GetLeads)
	h.Get("/cases", c.GetCases)
}

func (c *salesforceController) GetLeads(ctx *fiber.Ctx) error {
	leads, err := c.service.GetLeads(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(leads)
}

func (c *salesforceController) GetCases(ctx *fiber.Ctx) error {
	cases, err := c.service.GetCases(ctx.Context())
	if err != nil {
		return err
	}
	return ctx.JSON(cases)
}
