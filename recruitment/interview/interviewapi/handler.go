package interviewapi

import (
	"github.com/MieMoo/recruitment-module/pkg/iam/auth"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/interview"
	"github.com/MieMoo/recruitment-module/recruitment/interview/interviewsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for interview operations
type Handlers struct {
	service *interviewsrv.InterviewService
}

// NewHandlers creates a new interview handlers instance
func NewHandlers(service *interviewsrv.InterviewService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// ScheduleInterviews books interviews for a batch of applicants
// POST /api/interviews
func (h *Handlers) ScheduleInterviews(c *fiber.Ctx) error {
	var req interview.ScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	result, err := h.service.Schedule(c.Context(), req, auth.ActorName(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// RescheduleInterview moves an interview to a new time
// PATCH /api/interviews/:id/schedule
func (h *Handlers) RescheduleInterview(c *fiber.Ctx) error {
	interviewID := kernel.InterviewID(c.Params("id"))
	if interviewID == "" {
		return interview.ErrInterviewNotFound().WithDetail("id", "missing or empty")
	}

	var req interview.RescheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return interview.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	iv, err := h.service.Reschedule(c.Context(), interviewID, req, auth.ActorName(c))
	if err != nil {
		return err
	}

	return c.JSON(iv)
}

// ListActiveInterviews retrieves the interview schedule
// GET /api/interviews?status=Scheduled&search=santos
func (h *Handlers) ListActiveInterviews(c *fiber.Ctx) error {
	var filter interview.ActiveListFilter

	if raw := c.Query("status"); raw != "" {
		status, err := interview.ParseStatus(raw)
		if err != nil {
			return err
		}
		filter.Status = status
	}
	filter.Search = c.Query("search")

	interviews, err := h.service.ListActive(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(interviews)
}

// RegisterRoutes registers all interview routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/interviews")

	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.ListActiveInterviews,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.ScheduleInterviews,
	)

	api.Patch("/:id/schedule",
		authMiddleware.Authenticate(),
		handlers.RescheduleInterview,
	)
}
