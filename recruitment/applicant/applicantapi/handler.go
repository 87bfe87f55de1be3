package applicantapi

import (
	"io"
	"time"

	"github.com/MieMoo/recruitment-module/pkg/iam/auth"
	"github.com/MieMoo/recruitment-module/pkg/kernel"
	"github.com/MieMoo/recruitment-module/recruitment/applicant"
	"github.com/MieMoo/recruitment-module/recruitment/applicant/applicantsrv"
	"github.com/gofiber/fiber/v2"
)

// Handlers provides HTTP handlers for applicant operations
type Handlers struct {
	service *applicantsrv.ApplicantService
}

// NewHandlers creates a new applicant handlers instance
func NewHandlers(service *applicantsrv.ApplicantService) *Handlers {
	return &Handlers{
		service: service,
	}
}

// IntakeApplicant registers a new applicant from a multipart form
// POST /api/applicants
func (h *Handlers) IntakeApplicant(c *fiber.Ctx) error {
	file, err := c.FormFile("resume")
	if err != nil {
		return applicant.ErrMissingResume()
	}

	uploadedFile, err := file.Open()
	if err != nil {
		return applicant.ErrInvalidRequest().WithDetail("resume", "failed to open uploaded file")
	}
	defer uploadedFile.Close()

	fileData, err := io.ReadAll(uploadedFile)
	if err != nil {
		return applicant.ErrInvalidRequest().WithDetail("resume", "failed to read uploaded file")
	}

	req := applicant.IntakeRequest{
		FirstName:      kernel.FirstName(c.FormValue("first_name")),
		LastName:       kernel.LastName(c.FormValue("last_name")),
		Email:          kernel.Email(c.FormValue("email")),
		Phone:          kernel.Phone(c.FormValue("phone")),
		Sex:            kernel.Sex(c.FormValue("sex")),
		BirthDate:      c.FormValue("birth_date"),
		Address:        c.FormValue("address"),
		Position:       kernel.Position(c.FormValue("position")),
		EducationLevel: kernel.EducationLevel(c.FormValue("education_level")),
		Institution:    c.FormValue("institution"),
		EducationFrom:  c.FormValue("education_from"),
		EducationTo:    c.FormValue("education_to"),
		Source:         kernel.Source(c.FormValue("source")),
		Notes:          c.FormValue("notes"),
		ResumeFileName: file.Filename,
		ResumeData:     fileData,
		ContentType:    file.Header.Get("Content-Type"),
	}

	resp, err := h.service.Intake(c.Context(), req, auth.ActorName(c))
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetApplicant retrieves an applicant by ID
// GET /api/applicants/:id
func (h *Handlers) GetApplicant(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Params("id"))
	if applicantID == "" {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	resp, err := h.service.GetApplicant(c.Context(), applicantID)
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListApplicants retrieves applicants with filtering and pagination
// GET /api/applicants
func (h *Handlers) ListApplicants(c *fiber.Ctx) error {
	filter, err := parseListFilter(c)
	if err != nil {
		return err
	}

	applicants, err := h.service.ListApplicants(c.Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(applicants)
}

// UpdateStatus moves an applicant through the pipeline
// PATCH /api/applicants/:id/status
func (h *Handlers) UpdateStatus(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Params("id"))
	if applicantID == "" {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	var req applicant.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return applicant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.UpdateStatus(c.Context(), applicantID, req, auth.ActorName(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// HireApplicant marks an onboarding applicant as hired
// POST /api/applicants/:id/hire
func (h *Handlers) HireApplicant(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Params("id"))
	if applicantID == "" {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	var req struct {
		Version int64 `json:"version"`
	}
	if err := c.BodyParser(&req); err != nil {
		return applicant.ErrInvalidRequest().WithDetail("parse_error", err.Error())
	}

	resp, err := h.service.Hire(c.Context(), applicantID, req.Version, auth.ActorName(c))
	if err != nil {
		return err
	}

	return c.JSON(resp)
}

// ListOnboarding retrieves applicants in the onboarding stages
// GET /api/applicants/onboarding
func (h *Handlers) ListOnboarding(c *fiber.Ctx) error {
	applicants, err := h.service.ListOnboarding(c.Context())
	if err != nil {
		return err
	}

	return c.JSON(applicants)
}

// ListActions retrieves the audit feed across all applicants
// GET /api/applicants/actions
func (h *Handlers) ListActions(c *fiber.Ctx) error {
	feed, err := h.service.GetActionFeed(c.Context(), parsePaginationOptions(c))
	if err != nil {
		return err
	}

	return c.JSON(feed)
}

// GetActionLog retrieves the recorded actions for an applicant
// GET /api/applicants/:id/actions
func (h *Handlers) GetActionLog(c *fiber.Ctx) error {
	applicantID := kernel.ApplicantID(c.Params("id"))
	if applicantID == "" {
		return applicant.ErrApplicantNotFound().WithDetail("id", "missing or empty")
	}

	entries, err := h.service.GetActionLog(c.Context(), applicantID)
	if err != nil {
		return err
	}

	return c.JSON(entries)
}

// ============================================================================
// Helper Functions
// ============================================================================

// parseListFilter extracts filtering options from query parameters
func parseListFilter(c *fiber.Ctx) (applicant.ListFilter, error) {
	filter := applicant.ListFilter{
		Position:   kernel.Position(c.Query("position")),
		Search:     c.Query("search"),
		Pagination: parsePaginationOptions(c),
	}

	for _, raw := range c.Context().QueryArgs().PeekMulti("status") {
		status, err := applicant.ParseStatus(string(raw))
		if err != nil {
			return filter, err
		}
		filter.Statuses = append(filter.Statuses, status)
	}

	if raw := c.Query("applied_after"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return filter, applicant.ErrInvalidRequest().WithDetail("applied_after", raw)
		}
		filter.AppliedAfter = &parsed
	}

	return filter, nil
}

// parsePaginationOptions extracts pagination options from query parameters
func parsePaginationOptions(c *fiber.Ctx) kernel.PaginationOptions {
	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("page_size", 20)

	// Ensure valid values
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	return kernel.PaginationOptions{
		Page:     page,
		PageSize: pageSize,
	}
}

// RegisterRoutes registers all applicant routes
func RegisterRoutes(app *fiber.App, handlers *Handlers, authMiddleware *auth.TokenMiddleware) {
	api := app.Group("/api/applicants")

	api.Get("/",
		authMiddleware.Authenticate(),
		handlers.ListApplicants,
	)

	api.Get("/onboarding",
		authMiddleware.Authenticate(),
		handlers.ListOnboarding,
	)

	api.Get("/actions",
		authMiddleware.Authenticate(),
		handlers.ListActions,
	)

	api.Get("/:id",
		authMiddleware.Authenticate(),
		handlers.GetApplicant,
	)

	api.Get("/:id/actions",
		authMiddleware.Authenticate(),
		handlers.GetActionLog,
	)

	api.Post("/",
		authMiddleware.Authenticate(),
		handlers.IntakeApplicant,
	)

	api.Patch("/:id/status",
		authMiddleware.Authenticate(),
		handlers.UpdateStatus,
	)

	api.Post("/:id/hire",
		authMiddleware.Authenticate(),
		handlers.HireApplicant,
	)
}
