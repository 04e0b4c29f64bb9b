package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/talentbridge/job-portal/internal/core/domain"
	"github.com/talentbridge/job-portal/internal/core/ports"
)

// CompanyHandler handles recruiter company management.
type CompanyHandler struct {
	service ports.CompanyService
}

func NewCompanyHandler(service ports.CompanyService) *CompanyHandler {
	return &CompanyHandler{service: service}
}

type registerCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Location    string `json:"location"`
	LogoURL     string `json:"logo_url"`
}

type companyResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Company *domain.Company `json:"company,omitempty"`
}

type companyListResponse struct {
	Success   bool              `json:"success"`
	Companies []*domain.Company `json:"companies"`
}

// Register handles POST /api/v1/company/register.
func (h *CompanyHandler) Register(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req registerCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	company, err := h.service.Register(c.Request().Context(), ports.RegisterCompanyInput{
		Name:    req.Name,
		OwnerID: userID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, companyResponse{
		Success: true,
		Message: "Company registered successfully.",
		Company: company,
	})
}

// List handles GET /api/v1/company/get — companies owned by the caller.
func (h *CompanyHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	companies, err := h.service.ListByOwner(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, companyListResponse{Success: true, Companies: companies})
}

// Get handles GET /api/v1/company/get/:id.
func (h *CompanyHandler) Get(c echo.Context) error {
	company, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, companyResponse{Success: true, Company: company})
}

// Update handles PUT /api/v1/company/update/:id.
func (h *CompanyHandler) Update(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req updateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	company, err := h.service.Update(c.Request().Context(), ports.UpdateCompanyInput{
		CompanyID:   c.Param("id"),
		OwnerID:     userID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		Location:    req.Location,
		LogoURL:     req.LogoURL,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, companyResponse{
		Success: true,
		Message: "Company information updated.",
		Company: company,
	})
}
