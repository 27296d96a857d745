package v1

import (
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC       domain.JobUsecase
	candidateUC domain.CandidateUsecase
}

// NewJobHandler registers the HR-side job routes. The hr group carries the HR
// credential middleware, so every handler can assume a resolved actor.
func NewJobHandler(hr *gin.RouterGroup, jobUC domain.JobUsecase, candidateUC domain.CandidateUsecase) {
	handler := &JobHandler{jobUC: jobUC, candidateUC: candidateUC}

	jobs := hr.Group("/jobs")
	{
		jobs.POST("", handler.Create)
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.PUT("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
		jobs.PATCH("/:id/visibility", handler.SetVisibility)
		jobs.POST("/:id/extend", handler.Extend)
		jobs.GET("/:id/applicants", handler.ListApplicants)
	}
}

// hrActor pulls the identity the HR credential middleware resolved.
func hrActor(c *gin.Context) domain.HRActor {
	return domain.HRActor{
		HRID:      c.GetInt64(string(domain.KeyHRID)),
		CompanyID: c.GetInt64(string(domain.KeyCompanyID)),
		Points:    c.GetInt(string(domain.KeyPoints)),
	}
}

func pathID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperror.BadRequest("Invalid id")
	}
	return id, nil
}

type JobRequest struct {
	Title         string   `json:"title" binding:"required"`
	Description   string   `json:"description" binding:"required"`
	Benefit       string   `json:"benefit" binding:"required"`
	Requirement   string   `json:"requirement" binding:"required"`
	RecruitAmount int      `json:"recruit_amount" binding:"required,gt=0"`
	MinSalary     *float64 `json:"min_salary"`
	MaxSalary     *float64 `json:"max_salary"`
	CurrencyID    *int64   `json:"currency_id"`
	PackageDays   int      `json:"package_days"`
	Visible       bool     `json:"visible"`
	CityIDs       []int64  `json:"city_ids" binding:"required,min=1"`
	WorkTypeIDs   []int64  `json:"work_type_ids" binding:"required,min=1"`
}

func (r *JobRequest) toInput() *domain.JobInput {
	return &domain.JobInput{
		Title:         r.Title,
		Description:   r.Description,
		Benefit:       r.Benefit,
		Requirement:   r.Requirement,
		RecruitAmount: r.RecruitAmount,
		MinSalary:     r.MinSalary,
		MaxSalary:     r.MaxSalary,
		CurrencyID:    r.CurrencyID,
		PackageDays:   r.PackageDays,
		Visible:       r.Visible,
		CityIDs:       r.CityIDs,
		WorkTypeIDs:   r.WorkTypeIDs,
	}
}

// Create godoc
// @Summary      Create a job post
// @Description  Creates the post and debits the package cost in one transaction
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) Create(c *gin.Context) {
	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	job, err := h.jobUC.CreateJob(c.Request.Context(), hrActor(c), req.toInput())
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Job created", job)
}

// List godoc
// @Summary      List the company's job posts
// @Tags         jobs
// @Produce      json
// @Param        from_date  query     string  false  "RFC3339 lower bound on creation date"
// @Param        to_date    query     string  false  "RFC3339 upper bound on creation date"
// @Param        order      query     string  false  "asc or desc"
// @Param        page       query     int     false  "Page number"
// @Param        page_size  query     int     false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /jobs [get]
// @Security     BearerAuth
func (h *JobHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	filter := domain.CompanyJobFilter{
		CompanyID: c.GetInt64(string(domain.KeyCompanyID)),
		OrderBy:   c.DefaultQuery("order", "desc"),
		Page:      page,
		PageSize:  pageSize,
	}
	if raw := c.Query("from_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid from_date"))
			return
		}
		filter.FromDate = &t
	}
	if raw := c.Query("to_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.Error(apperror.BadRequest("Invalid to_date"))
			return
		}
		filter.ToDate = &t
	}

	jobs, total, err := h.jobUC.ListCompanyJobs(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company job list", response.Paginated{
		Items:    jobs,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	})
}

// GetDetails godoc
// @Summary      Get one of the company's job posts
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [get]
// @Security     BearerAuth
func (h *JobHandler) GetDetails(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	detail, err := h.jobUC.GetJob(c.Request.Context(), hrActor(c), id)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job details", detail)
}

// Update godoc
// @Summary      Update a job post
// @Description  Rewrites the post's fields; an optional package purchase extends the expiry in the same transaction
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      int         true  "Job ID"
// @Param        job  body      JobRequest  true  "Job JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req JobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobUC.UpdateJob(c.Request.Context(), hrActor(c), id, req.toInput()); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job updated", nil)
}

// Delete godoc
// @Summary      Delete a job post
// @Tags         jobs
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.jobUC.DeleteJob(c.Request.Context(), hrActor(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job deleted", nil)
}

type SetVisibilityRequest struct {
	Visible *bool `json:"visible" binding:"required"`
}

// SetVisibility godoc
// @Summary      Show or hide a job post
// @Description  Expired posts are forced hidden regardless of the requested flag
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      int                   true  "Job ID"
// @Param        request  body      SetVisibilityRequest  true  "Visibility flag"
// @Success      200      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /jobs/{id}/visibility [patch]
// @Security     BearerAuth
func (h *JobHandler) SetVisibility(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req SetVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	result, err := h.jobUC.SetVisibility(c.Request.Context(), hrActor(c), id, *req.Visible)
	if err != nil {
		c.Error(err)
		return
	}

	message := "Visibility updated"
	if result.Expired {
		message = "Job is expired. Please purchase package to display the post"
	}
	response.Success(c, http.StatusOK, message, result)
}

type ExtendJobRequest struct {
	PackageDays int  `json:"package_days" binding:"required,gt=0"`
	Visible     bool `json:"visible"`
}

// Extend godoc
// @Summary      Extend a job post's display window
// @Description  Debits the package cost and moves the expiry in one transaction
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id       path      int               true  "Job ID"
// @Param        request  body      ExtendJobRequest  true  "Package purchase"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Router       /jobs/{id}/extend [post]
// @Security     BearerAuth
func (h *JobHandler) Extend(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	var req ExtendJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.jobUC.ExtendJob(c.Request.Context(), hrActor(c), id, req.PackageDays, req.Visible); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job extended", nil)
}

// ListApplicants godoc
// @Summary      List applicants for one of the company's job posts
// @Tags         jobs
// @Produce      json
// @Param        id         path      int  true   "Job ID"
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Failure      403        {object}  response.Response
// @Router       /jobs/{id}/applicants [get]
// @Security     BearerAuth
func (h *JobHandler) ListApplicants(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	applicants, total, err := h.candidateUC.ListJobApplicants(c.Request.Context(), hrActor(c), id, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Applicant list", response.Paginated{
		Items:    applicants,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}
