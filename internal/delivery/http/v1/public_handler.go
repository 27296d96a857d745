package v1

import (
	"net/http"
	"strconv"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type PublicHandler struct {
	jobUC       domain.JobUsecase
	companyUC   domain.CompanyUsecase
	referenceUC domain.ReferenceUsecase
}

// NewPublicHandler registers the unauthenticated routes: job search, company
// pages, and reference data. Only effectively visible posts ever surface here.
func NewPublicHandler(public *gin.RouterGroup, jobUC domain.JobUsecase, companyUC domain.CompanyUsecase, referenceUC domain.ReferenceUsecase) {
	handler := &PublicHandler{jobUC: jobUC, companyUC: companyUC, referenceUC: referenceUC}

	jobs := public.Group("/jobs/public")
	{
		jobs.GET("", handler.SearchJobs)
		jobs.GET("/:id", handler.GetJob)
	}

	companies := public.Group("/companies/public")
	{
		companies.GET("/:id", handler.GetCompany)
		companies.GET("/:id/jobs", handler.ListCompanyJobs)
	}

	reference := public.Group("/reference")
	{
		reference.GET("/cities", handler.ListCities)
		reference.GET("/districts", handler.ListDistricts)
		reference.GET("/work-types", handler.ListWorkTypes)
		reference.GET("/currencies", handler.ListCurrencies)
		reference.GET("/business-scales", handler.ListBusinessScales)
	}
}

// parseIDList turns a comma-separated query value into IDs, skipping blanks.
func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	var ids []int64
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, apperror.BadRequest("Invalid id list")
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SearchJobs godoc
// @Summary      Search job posts (public)
// @Description  Full-text search over displayed posts; hidden and expired posts never appear
// @Tags         public
// @Produce      json
// @Param        q              query     string  false  "Search phrase"
// @Param        city_ids       query     string  false  "Comma-separated city IDs"
// @Param        work_type_ids  query     string  false  "Comma-separated work type IDs"
// @Param        order          query     string  false  "asc or desc"
// @Param        page           query     int     false  "Page number"
// @Param        page_size      query     int     false  "Page size"
// @Success      200            {object}  response.Response
// @Router       /jobs/public [get]
func (h *PublicHandler) SearchJobs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	cityIDs, err := parseIDList(c.Query("city_ids"))
	if err != nil {
		c.Error(err)
		return
	}
	workTypeIDs, err := parseIDList(c.Query("work_type_ids"))
	if err != nil {
		c.Error(err)
		return
	}

	filter := domain.PublicJobFilter{
		SearchPhrase: c.Query("q"),
		CityIDs:      cityIDs,
		WorkTypeIDs:  workTypeIDs,
		OrderBy:      c.DefaultQuery("order", "desc"),
		Page:         page,
		PageSize:     pageSize,
	}

	jobs, total, err := h.jobUC.SearchPublicJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Public job list", response.Paginated{
		Items:    jobs,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// GetJob godoc
// @Summary      Get a displayed job post (public)
// @Tags         public
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /jobs/public/{id} [get]
func (h *PublicHandler) GetJob(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	detail, err := h.jobUC.GetPublicJob(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", detail)
}

// publicCompany strips the account-internal fields from a company profile.
type publicCompany struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Avatar      *string `json:"avatar"`
	Wallpaper   *string `json:"wallpaper"`
	Address     *string `json:"address"`
	Website     *string `json:"website"`
	Scale       *string `json:"scale"`
	Description *string `json:"description"`
}

// GetCompany godoc
// @Summary      Get a company's public page
// @Tags         public
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /companies/public/{id} [get]
func (h *PublicHandler) GetCompany(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	company, err := h.companyUC.GetProfile(c.Request.Context(), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company page", publicCompany{
		ID:          company.ID,
		Name:        company.Name,
		Avatar:      company.Avatar,
		Wallpaper:   company.Wallpaper,
		Address:     company.Address,
		Website:     company.Website,
		Scale:       company.Scale,
		Description: company.Description,
	})
}

// ListCompanyJobs godoc
// @Summary      List a company's displayed job posts (public)
// @Tags         public
// @Produce      json
// @Param        id         path      int  true   "Company ID"
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /companies/public/{id}/jobs [get]
func (h *PublicHandler) ListCompanyJobs(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	jobs, total, err := h.jobUC.ListCompanyPublicJobs(c.Request.Context(), id, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company job list", response.Paginated{
		Items:    jobs,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ListCities godoc
// @Summary      List cities
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /reference/cities [get]
func (h *PublicHandler) ListCities(c *gin.Context) {
	cities, err := h.referenceUC.ListCities(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "City list", cities)
}

// ListDistricts godoc
// @Summary      List districts of a city
// @Tags         reference
// @Produce      json
// @Param        city_id  query     int  true  "City ID"
// @Success      200      {object}  response.Response
// @Router       /reference/districts [get]
func (h *PublicHandler) ListDistricts(c *gin.Context) {
	cityID, err := strconv.ParseInt(c.Query("city_id"), 10, 64)
	if err != nil || cityID <= 0 {
		c.Error(apperror.BadRequest("city_id is required"))
		return
	}

	districts, err := h.referenceUC.ListDistricts(c.Request.Context(), cityID)
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "District list", districts)
}

// ListWorkTypes godoc
// @Summary      List work types
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /reference/work-types [get]
func (h *PublicHandler) ListWorkTypes(c *gin.Context) {
	workTypes, err := h.referenceUC.ListWorkTypes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Work type list", workTypes)
}

// ListCurrencies godoc
// @Summary      List currencies
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /reference/currencies [get]
func (h *PublicHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.referenceUC.ListCurrencies(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Currency list", currencies)
}

// ListBusinessScales godoc
// @Summary      List company size buckets
// @Tags         reference
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /reference/business-scales [get]
func (h *PublicHandler) ListBusinessScales(c *gin.Context) {
	scales, err := h.referenceUC.ListBusinessScales(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Business scale list", scales)
}
