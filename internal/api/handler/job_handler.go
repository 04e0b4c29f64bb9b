package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/api/metrics"
	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// JobHandler handles job posting and search.
type JobHandler struct {
	service ports.JobService
}

func NewJobHandler(service ports.JobService) *JobHandler {
	return &JobHandler{service: service}
}

type postJobRequest struct {
	Title           string   `json:"title"            validate:"required"`
	Description     string   `json:"description"      validate:"required"`
	Requirements    []string `json:"requirements"`
	Salary          int64    `json:"salary"           validate:"required,gt=0"`
	ExperienceLevel int      `json:"experience_level" validate:"gte=0"`
	Location        string   `json:"location"         validate:"required"`
	JobType         string   `json:"job_type"         validate:"required"`
	Positions       int      `json:"positions"        validate:"required,gt=0"`
	CompanyID       string   `json:"company_id"       validate:"required"`
}

type jobResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Job     *domain.Job `json:"job,omitempty"`
}

type jobListResponse struct {
	Success bool          `json:"success"`
	Jobs    []*domain.Job `json:"jobs"`
}

// Post handles POST /api/v1/job/post — recruiter only.
func (h *JobHandler) Post(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req postJobRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	job, err := h.service.Post(c.Request().Context(), ports.PostJobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Salary:          req.Salary,
		ExperienceLevel: req.ExperienceLevel,
		Location:        req.Location,
		JobType:         req.JobType,
		Positions:       req.Positions,
		CompanyID:       req.CompanyID,
		CreatedBy:       userID,
	})
	if err != nil {
		return err
	}

	metrics.JobsCreatedTotal.WithLabelValues(job.JobType).Inc()
	return c.JSON(http.StatusCreated, jobResponse{
		Success: true,
		Message: "New job created successfully.",
		Job:     job,
	})
}

// Search handles GET /api/v1/job/get?keyword= — all authenticated users.
func (h *JobHandler) Search(c echo.Context) error {
	jobs, err := h.service.Search(c.Request().Context(), c.QueryParam("keyword"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{Success: true, Jobs: jobs})
}

// Get handles GET /api/v1/job/get/:id.
func (h *JobHandler) Get(c echo.Context) error {
	job, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobResponse{Success: true, Job: job})
}

// ListOwn handles GET /api/v1/job/getadminjobs — the recruiter's postings.
func (h *JobHandler) ListOwn(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	jobs, err := h.service.ListByRecruiter(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, jobListResponse{Success: true, Jobs: jobs})
}
