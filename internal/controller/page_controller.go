package controller

import (
	"errors"

	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPageController interface {
	RegisterRoutes(r fiber.Router)
	Overview(ctx *fiber.Ctx) error
	SiteDetail(ctx *fiber.Ctx) error
	QuestionAnswer(ctx *fiber.Ctx) error
	Dashboard(ctx *fiber.Ctx) error
}

type pageController struct {
	service service.IPageService
}

func NewPageController(service service.IPageService) IPageController {
	return &pageController{service: service}
}

func (c *pageController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/page/v1")
	h.Get("/overview", c.Overview)
	h.Get("/site", c.SiteDetail)
	h.Get("/question", c.QuestionAnswer)
	h.Get("/dashboard", c.Dashboard)
}

func (c *pageController) Overview(ctx *fiber.Ctx) error {
	res, err := c.service.Overview(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Overview page", res))
}

// SiteDetail returns the open project's detail payload. Without an open
// project (or with a stale site id) it degrades to the overview payload
// with a notice; a detail request is never a failure.
func (c *pageController) SiteDetail(ctx *fiber.Ctx) error {
	sid := sessionId(ctx)

	res, err := c.service.SiteDetail(ctx.Context(), sid)
	if errors.Is(err, service.ErrNoSiteOpen) {
		overview, err := c.service.OverviewWithNotice(ctx.Context(), sid, "Select a project to view its documentation.")
		if err != nil {
			return httpStatus(err)
		}
		return ctx.JSON(serverutils.SuccessResponse("No project open, showing overview", overview))
	}
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Site detail page", res))
}

// QuestionAnswer renders the answer page. The first request after a
// submission runs the mock pipeline and blocks for its processing
// delay; later requests replay the recorded exchange.
func (c *pageController) QuestionAnswer(ctx *fiber.Ctx) error {
	res, err := c.service.QuestionAnswer(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Question & answer page", res))
}

func (c *pageController) Dashboard(ctx *fiber.Ctx) error {
	res, err := c.service.Dashboard(ctx.Context(), sessionId(ctx))
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Logging dashboard page", res))
}
