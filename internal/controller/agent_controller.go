package controller

import (
	"crm-agent-be/internal/dto"
	"crm-agent-be/internal/pkg/serverutils"
	"crm-agent-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAgentController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	SimulateSprintPreview(ctx *fiber.Ctx) error
}

type agentController struct {
	service service.IAgentService
}

func NewAgentController(service service.IAgentService) IAgentController {
	return &agentController{service: service}
}

func (c *agentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/agent")
	h.Post("/message", c.SendMessage)
	h.Get("/history/:conversationId", c.GetHistory)
	h.Post("/simulate-sprint-preview", c.SimulateSprintPreview)
}

func (c *agentController) SendMessage(ctx *fiber.Ctx) error {
	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	result, err := c.service.ProcessMessage(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(dto.SendMessageResponse{
		Reply:          result.Reply,
		ConversationId: result.ConversationId,
		Actions:        result.Actions,
	})
}

func (c *agentController) GetHistory(ctx *fiber.Ctx) error {
	idParam := ctx.Params("conversationId")
	conversationId, err := uuid.Parse(idParam)
	if err != nil {
		return serverutils.NewValidationError("invalid conversation id")
	}

	messages, err := c.service.GetHistory(ctx.Context(), conversationId)
	if err != nil {
		return err
	}

	return ctx.JSON(messages)
}

func (c *agentController) SimulateSprintPreview(ctx *fiber.Ctx) error {
	return ctx.JSON(c.service.SimulateSprintPreview(ctx.Context()))
}
