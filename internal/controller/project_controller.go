// FILE: internal/controller/project_controller.go
// Controller for project upload and processing job endpoints
package controller

import (
	"strings"

	"construction-deepwiki-be/internal/dto"
	"construction-deepwiki-be/internal/entity"
	"construction-deepwiki-be/internal/pkg/serverutils"
	"construction-deepwiki-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProjectController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	JobStatus(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
}

type projectController struct {
	service service.IIngestService
}

func NewProjectController(service service.IIngestService) IProjectController {
	return &projectController{service: service}
}

func (c *projectController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/project/v1")
	h.Post("", c.Create)
	h.Get("/jobs/:id", c.JobStatus)
	h.Post("/jobs/:id/cancel", c.Cancel)
}

// Create accepts the multipart upload form: a "project_name" field plus
// one or more "documents" files. Only the file names and sizes travel
// into the pipeline; the contents are dropped right here.
func (c *projectController) Create(ctx *fiber.Ctx) error {
	form, err := ctx.MultipartForm()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Multipart form with project_name and documents is required"))
	}

	var req dto.CreateProjectRequest
	if names := form.Value["project_name"]; len(names) > 0 {
		req.ProjectName = strings.TrimSpace(names[0])
	}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	headers := form.File["documents"]
	files := make([]entity.UploadedDocument, 0, len(headers))
	for _, h := range headers {
		files = append(files, entity.UploadedDocument{
			Name: h.Filename,
			Size: h.Size,
		})
	}

	res, err := c.service.Submit(ctx.Context(), sessionId(ctx), &req, files)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Project processing started", res))
}

func (c *projectController) JobStatus(ctx *fiber.Ctx) error {
	jobId := ctx.Params("id")

	res, err := c.service.JobStatus(ctx.Context(), sessionId(ctx), jobId)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Job status", res))
}

func (c *projectController) Cancel(ctx *fiber.Ctx) error {
	jobId := ctx.Params("id")

	res, err := c.service.Cancel(ctx.Context(), sessionId(ctx), jobId)
	if err != nil {
		return httpStatus(err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Cancellation requested", res))
}
