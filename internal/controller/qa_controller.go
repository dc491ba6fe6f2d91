package controller

import (
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IQAController interface {
	RegisterRoutes(r fiber.Router)
	Submit(ctx *fiber.Ctx) error
	History(ctx *fiber.Ctx) error
}

type qaController struct {
	service service.IQAService
}

func NewQAController(service service.IQAService) IQAController {
	return &qaController{service: service}
}

func (c *qaController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/qa/v1")
	h.Post("/questions", c.Submit)
	h.Get("/history", c.History)
}

// Submit parks the question and moves the session to the answer page.
// The response returns immediately; the processing delay is charged to
// the first answer-page render instead.
func (c *qaController) Submit(ctx *fiber.Ctx) error {
	var req dto.AskQuestionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.Submit(ctx.Context(), sessionId(ctx), &req)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Question submitted", res))
}

func (c *qaController) History(ctx *fiber.Ctx) error {
	res, err := c.service.History(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Question history", res))
}
