// FILE: internal/controller/activity_controller.go
// Controller for activity log and export endpoints
package controller

import (
	"strconv"

	"construction-deepwiki-be/internal/constant"
	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/repository/memory"
	"construction-deepwiki-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IActivityController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Metrics(ctx *fiber.Ctx) error
	Actions(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Sink(ctx *fiber.Ctx) error
}

type activityController struct {
	service service.IActivityService
}

func NewActivityController(service service.IActivityService) IActivityController {
	return &activityController{service: service}
}

func (c *activityController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/activity/v1")
	h.Get("", c.List)
	h.Get("/metrics", c.Metrics)
	h.Get("/actions", c.Actions)
	h.Get("/export", c.Export)
	h.Get("/sink", c.Sink)
}

// List returns the session's buffered entries, newest first. The limit
// defaults to the dashboard's 50 and can never exceed the buffer cap.
func (c *activityController) List(ctx *fiber.Ctx) error {
	level := ctx.Query("level", constant.LogFilterAll)
	action := ctx.Query("action", constant.LogFilterAll)
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	if limit <= 0 || limit > memory.BufferCap {
		limit = memory.BufferCap
	}

	res := c.service.List(sessionId(ctx), level, action, limit)
	return ctx.JSON(serverutils.SuccessResponse("Activity entries", res))
}

func (c *activityController) Metrics(ctx *fiber.Ctx) error {
	res := c.service.Metrics(sessionId(ctx))
	return ctx.JSON(serverutils.SuccessResponse("Activity metrics", res))
}

func (c *activityController) Actions(ctx *fiber.Ctx) error {
	res := dto.ActivityActionsResponse{Actions: c.service.Actions(sessionId(ctx))}
	return ctx.JSON(serverutils.SuccessResponse("Recorded actions", res))
}

// Export streams the filtered entries as a JSON file download named
// with the generation timestamp.
func (c *activityController) Export(ctx *fiber.Ctx) error {
	level := ctx.Query("level", constant.LogFilterAll)
	action := ctx.Query("action", constant.LogFilterAll)

	meta, data, err := c.service.Export(sessionId(ctx), level, action)
	if err != nil {
		return httpStatus(err)
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+meta.Filename+`"`)
	return ctx.Send(data)
}

// Sink reads the durable log file back, newest first. Unlike the
// session buffer this view spans all sessions and is never truncated.
func (c *activityController) Sink(ctx *fiber.Ctx) error {
	level := ctx.Query("level", "")
	limit, _ := strconv.Atoi(ctx.Query("limit", "50"))
	offset, _ := strconv.Atoi(ctx.Query("offset", "0"))

	logs, err := c.service.SinkLogs(level, limit, offset)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Sink entries", logs))
}
