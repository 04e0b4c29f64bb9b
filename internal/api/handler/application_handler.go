package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/api/metrics"
	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// ApplicationHandler handles application submission and review.
type ApplicationHandler struct {
	service ports.ApplicationService
}

func NewApplicationHandler(service ports.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{service: service}
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending accepted rejected"`
}

type applicationResponse struct {
	Success     bool                `json:"success"`
	Message     string              `json:"message,omitempty"`
	Application *domain.Application `json:"application,omitempty"`
}

type applicationItem struct {
	ID        string                   `json:"id"`
	Status    domain.ApplicationStatus `json:"status"`
	CreatedAt string                   `json:"created_at"`
	Job       *domain.Job              `json:"job,omitempty"`
	Company   *domain.Company          `json:"company,omitempty"`
}

type applicationListResponse struct {
	Success      bool              `json:"success"`
	Applications []applicationItem `json:"applications"`
}

type applicantItem struct {
	ID        string                   `json:"id"`
	Status    domain.ApplicationStatus `json:"status"`
	CreatedAt string                   `json:"created_at"`
	Applicant *domain.User             `json:"applicant,omitempty"`
}

type applicantListResponse struct {
	Success    bool            `json:"success"`
	Applicants []applicantItem `json:"applicants"`
}

// Apply handles GET /api/v1/application/apply/:id — student only.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	app, err := h.service.Apply(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	metrics.ApplicationsSubmittedTotal.Inc()
	return c.JSON(http.StatusCreated, applicationResponse{
		Success:     true,
		Message:     "Job applied successfully.",
		Application: app,
	})
}

// ListOwn handles GET /api/v1/application/get — the student's applications.
func (h *ApplicationHandler) ListOwn(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListByApplicant(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	items := make([]applicationItem, 0, len(views))
	for _, v := range views {
		items = append(items, applicationItem{
			ID:        v.Application.ID,
			Status:    v.Application.Status,
			CreatedAt: v.Application.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Job:       v.Job,
			Company:   v.Company,
		})
	}
	return c.JSON(http.StatusOK, applicationListResponse{Success: true, Applications: items})
}

// ListApplicants handles GET /api/v1/application/:id/applicants — recruiter only.
func (h *ApplicationHandler) ListApplicants(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	views, err := h.service.ListApplicants(c.Request().Context(), c.Param("id"), userID)
	if err != nil {
		return err
	}

	items := make([]applicantItem, 0, len(views))
	for _, v := range views {
		items = append(items, applicantItem{
			ID:        v.Application.ID,
			Status:    v.Application.Status,
			CreatedAt: v.Application.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Applicant: v.Applicant,
		})
	}
	return c.JSON(http.StatusOK, applicantListResponse{Success: true, Applicants: items})
}

// UpdateStatus handles POST /api/v1/application/status/:id/update — recruiter only.
func (h *ApplicationHandler) UpdateStatus(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	app, err := h.service.UpdateStatus(c.Request().Context(), ports.UpdateStatusInput{
		ApplicationID: c.Param("id"),
		RecruiterID:   userID,
		Status:        domain.ApplicationStatus(req.Status),
	})
	if err != nil {
		return err
	}

	metrics.ApplicationStatusTotal.WithLabelValues(string(app.Status)).Inc()
	return c.JSON(http.StatusOK, applicationResponse{
		Success:     true,
		Message:     "Status updated successfully.",
		Application: app,
	})
}
