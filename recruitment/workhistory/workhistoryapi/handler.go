package workhistoryapi

import (
	"github.com/MieMoo/recruitment-module/pkg/iam/auth"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory"
	"github.com/MieMoo/recruitment-module/recruitment/workhistory/workhistorysrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for work history operations
type Handlers struct {
	service *workhistorysrv.WorkHistoryService
}

// NewHandlers creates a new work history handlers instance
func NewHandlers(service *workhistorysrv.WorkHistoryService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// AddRecord appends a work history record to an applicant
// POST /api/applicants/:id/work-history
func (h *Handlers) AddRecord(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Params("id"))
	if applicantID == "" {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	var req workhistory.AddRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return workhistory.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	record, err := h.service.AddRecord(c.Context(), applicantID, req)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(record)
}

// ListRecords retrieves an applicant's work history
// GET /api/applicants/:id/work-history
func (h *Handlers) ListRecords(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Params("id"))
	if applicantID == "" {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	records, err := h.service.ListRecords(c.Context(), applicantID)
	if err != nil {
		return err
	}

	return c.JSON(records)
}

// RegisterRoutes registers all work history routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/applicants/:id/work-history")

	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.ListRecords,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.AddRecord,
	)
}
