package v1

import (
	"net/http"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CompanyHandler struct {
	companyUC domain.CompanyUsecase
}

// NewCompanyHandler registers the company-side routes. Profile edits require
// the manager role on top of the HR credential.
func NewCompanyHandler(hr *gin.RouterGroup, manager *gin.RouterGroup, companyUC domain.CompanyUsecase) {
	handler := &CompanyHandler{companyUC: companyUC}

	company := hr.Group("/company")
	{
		company.GET("/profile", handler.GetProfile)
		company.GET("/points", handler.GetPoints)
		company.POST("/attendance", handler.Attendance)
	}

	manager.PUT("/company/profile", handler.UpdateProfile)
}

// GetProfile godoc
// @Summary      Get the company profile
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /company/profile [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	companyID := c.GetInt64(string(domain.KeyCompanyID))

	company, err := h.companyUC.GetProfile(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile", company)
}

// GetPoints godoc
// @Summary      Get the company's point balance
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /company/points [get]
// @Security     BearerAuth
func (h *CompanyHandler) GetPoints(c *gin.Context) {
	companyID := c.GetInt64(string(domain.KeyCompanyID))

	points, err := h.companyUC.GetPoints(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Point balance", gin.H{"points": points})
}

// Attendance godoc
// @Summary      Daily check-in
// @Description  Credits the daily point bonus, capped at the balance limit; one check-in per calendar day
// @Tags         company
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /company/attendance [post]
// @Security     BearerAuth
func (h *CompanyHandler) Attendance(c *gin.Context) {
	companyID := c.GetInt64(string(domain.KeyCompanyID))

	result, err := h.companyUC.DailyAttendance(c.Request.Context(), companyID)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Attendance recorded"
	if result.AtLimit {
		message = "Attendance recorded; point balance is at the limit"
	}
	response.Success(c, http.StatusOK, message, result)
}

type UpdateCompanyProfileRequest struct {
	Address     string  `json:"address" binding:"required"`
	Scale       string  `json:"scale" binding:"required,business_scale"`
	Website     string  `json:"website" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Representer string  `json:"representer" binding:"required"`
	DistrictID  int64   `json:"district_id" binding:"required"`
	Avatar      *string `json:"avatar"`
	Wallpaper   *string `json:"wallpaper"`
}

// UpdateProfile godoc
// @Summary      Update the company profile
// @Description  Manager only; all descriptive fields are required
// @Tags         company
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateCompanyProfileRequest  true  "Profile JSON"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /company/profile [put]
// @Security     BearerAuth
func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	companyID := c.GetInt64(string(domain.KeyCompanyID))
	err := h.companyUC.UpdateProfile(c.Request.Context(), companyID, &domain.CompanyProfileUpdate{
		Address:     req.Address,
		Scale:       req.Scale,
		Website:     req.Website,
		Description: req.Description,
		Representer: req.Representer,
		DistrictID:  req.DistrictID,
		Avatar:      req.Avatar,
		Wallpaper:   req.Wallpaper,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company profile updated", nil)
}
