package controller

import (
	"errors"

	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type INavigationController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	GoToSite(ctx *fiber.Ctx) error
	GoToSection(ctx *fiber.Ctx) error
	GoBack(ctx *fiber.Ctx) error
	GoHome(ctx *fiber.Ctx) error
	GoToDashboard(ctx *fiber.Ctx) error
	GoToProject(ctx *fiber.Ctx) error
	GoToQA(ctx *fiber.Ctx) error
}

type navigationController struct {
	service service.INavigationService
}

func NewNavigationController(service service.INavigationService) INavigationController {
	return &navigationController{service: service}
}

func (c *navigationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/navigation/v1")
	h.Get("", c.State)
	h.Post("/site", c.GoToSite)
	h.Post("/section", c.GoToSection)
	h.Post("/back", c.GoBack)
	h.Post("/home", c.GoHome)
	h.Post("/dashboard", c.GoToDashboard)
	h.Post("/project", c.GoToProject)
	h.Post("/qa", c.GoToQA)
}

func (c *navigationController) State(ctx *fiber.Ctx) error {
	res, err := c.service.State(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Navigation state", res))
}

func (c *navigationController) GoToSite(ctx *fiber.Ctx) error {
	var req dto.NavigateSiteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GoToSite(ctx.Context(), sessionId(ctx), &req)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Opened project", res))
}

func (c *navigationController) GoToSection(ctx *fiber.Ctx) error {
	var req dto.NavigateSectionRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.service.GoToSection(ctx.Context(), sessionId(ctx), &req)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Opened section", res))
}

func (c *navigationController) GoBack(ctx *fiber.Ctx) error {
	res, err := c.service.GoBack(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Navigated back", res))
}

func (c *navigationController) GoHome(ctx *fiber.Ctx) error {
	res, err := c.service.GoHome(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Navigated home", res))
}

func (c *navigationController) GoToDashboard(ctx *fiber.Ctx) error {
	res, err := c.service.GoToDashboard(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Opened dashboard", res))
}

func (c *navigationController) GoToProject(ctx *fiber.Ctx) error {
	res, err := c.service.GoToProject(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Opened project", res))
}

// GoToQA jumps back to the answer page for the pending question. With
// nothing pending the jump degrades to the overview instead of
// failing, mirroring how the menu button is simply absent in that
// state.
func (c *navigationController) GoToQA(ctx *fiber.Ctx) error {
	sid := sessionId(ctx)

	res, err := c.service.GoToQA(ctx.Context(), sid)
	if errors.Is(err, service.ErrNoPendingQuestion) {
		res, err = c.service.GoHome(ctx.Context(), sid)
		if err != nil {
			return httpStatus(err)
		}
		return ctx.JSON(serverutils.SuccessResponse("No pending question, returned to overview", res))
	}
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Opened question", res))
}
