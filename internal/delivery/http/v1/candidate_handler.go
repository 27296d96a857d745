package v1

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/storage"

	"github.com/gin-gonic/gin"
)

const maxCVSize = 5 << 20 // 5 MiB

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
	store       storage.ObjectStorage
}

// NewCandidateHandler registers the candidate-side routes. The group carries
// the candidate credential middleware.
func NewCandidateHandler(candidate *gin.RouterGroup, candidateUC domain.CandidateUsecase, store storage.ObjectStorage) {
	handler := &CandidateHandler{candidateUC: candidateUC, store: store}

	me := candidate.Group("/candidate")
	{
		me.GET("/profile", handler.GetProfile)
		me.POST("/cv", handler.UploadCV)
		me.PUT("/skills", handler.UpdateSkills)
		me.GET("/applications", handler.ListApplied)
		me.GET("/saved-jobs", handler.ListSaved)
		me.GET("/following", handler.ListFollowing)
		me.POST("/jobs/:id/apply", handler.Apply)
		me.POST("/jobs/:id/save", handler.Save)
		me.DELETE("/jobs/:id/save", handler.Unsave)
		me.POST("/companies/:id/follow", handler.Follow)
		me.DELETE("/companies/:id/follow", handler.Unfollow)
	}
}

func candidateID(c *gin.Context) int64 {
	return c.GetInt64(string(domain.KeyCandidateID))
}

// GetProfile godoc
// @Summary      Get the candidate profile
// @Tags         candidate
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /candidate/profile [get]
// @Security     BearerAuth
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	candidate, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", candidate)
}

// UploadCV godoc
// @Summary      Upload a CV
// @Description  Accepts a PDF, stores it, and links it to the candidate profile
// @Tags         candidate
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CV file (PDF)"
// @Success      200   {object}  response.Response
// @Failure      400   {object}  response.Response
// @Router       /candidate/cv [post]
// @Security     BearerAuth
func (h *CandidateHandler) UploadCV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("CV file is required"))
		return
	}
	if fileHeader.Size > maxCVSize {
		c.Error(apperror.BadRequest("CV file exceeds the 5MB limit"))
		return
	}
	if fileHeader.Header.Get("Content-Type") != "application/pdf" {
		c.Error(apperror.BadRequest("CV must be a PDF"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.BadRequest("Unable to read CV file"))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxCVSize))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	id := candidateID(c)
	key := fmt.Sprintf("cv/%d/%d.pdf", id, time.Now().UnixNano())
	url, err := h.store.Upload(c.Request.Context(), key, "application/pdf", data)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	if err := h.candidateUC.UpdateCV(c.Request.Context(), id, url); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV uploaded", gin.H{"cv_link": url})
}

type UpdateSkillsRequest struct {
	Skills []string `json:"skills" binding:"required"`
}

// UpdateSkills godoc
// @Summary      Replace the candidate's skill list
// @Tags         candidate
// @Accept       json
// @Produce      json
// @Param        skills  body      UpdateSkillsRequest  true  "Skills"
// @Success      200     {object}  response.Response
// @Router       /candidate/skills [put]
// @Security     BearerAuth
func (h *CandidateHandler) UpdateSkills(c *gin.Context) {
	var req UpdateSkillsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	if err := h.candidateUC.UpdateSkills(c.Request.Context(), candidateID(c), req.Skills); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Skills updated", nil)
}

// Apply godoc
// @Summary      Apply to a job post
// @Description  Only posts that are currently displayed accept applications
// @Tags         candidate
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidate/jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *CandidateHandler) Apply(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.ApplyJob(c.Request.Context(), candidateID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Application submitted", nil)
}

// Save godoc
// @Summary      Save a job post
// @Tags         candidate
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /candidate/jobs/{id}/save [post]
// @Security     BearerAuth
func (h *CandidateHandler) Save(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.SaveJob(c.Request.Context(), candidateID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job saved", nil)
}

// Unsave godoc
// @Summary      Remove a saved job post
// @Tags         candidate
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response
// @Router       /candidate/jobs/{id}/save [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Unsave(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.UnsaveJob(c.Request.Context(), candidateID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job removed from saved list", nil)
}

// Follow godoc
// @Summary      Follow a company
// @Tags         candidate
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Router       /candidate/companies/{id}/follow [post]
// @Security     BearerAuth
func (h *CandidateHandler) Follow(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.FollowCompany(c.Request.Context(), candidateID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company followed", nil)
}

// Unfollow godoc
// @Summary      Unfollow a company
// @Tags         candidate
// @Produce      json
// @Param        id   path      int  true  "Company ID"
// @Success      200  {object}  response.Response
// @Router       /candidate/companies/{id}/follow [delete]
// @Security     BearerAuth
func (h *CandidateHandler) Unfollow(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.candidateUC.UnfollowCompany(c.Request.Context(), candidateID(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Company unfollowed", nil)
}

func (h *CandidateHandler) paginatedList(c *gin.Context, message string,
	fetch func(ctx *gin.Context, id int64, page, pageSize int) (interface{}, int64, error)) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	items, total, err := fetch(c, candidateID(c), page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, message, response.Paginated{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	})
}

// ListApplied godoc
// @Summary      List the candidate's applications
// @Tags         candidate
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /candidate/applications [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListApplied(c *gin.Context) {
	h.paginatedList(c, "Application list", func(ctx *gin.Context, id int64, page, pageSize int) (interface{}, int64, error) {
		return h.candidateUC.ListApplied(ctx.Request.Context(), id, page, pageSize)
	})
}

// ListSaved godoc
// @Summary      List the candidate's saved jobs
// @Tags         candidate
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /candidate/saved-jobs [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListSaved(c *gin.Context) {
	h.paginatedList(c, "Saved job list", func(ctx *gin.Context, id int64, page, pageSize int) (interface{}, int64, error) {
		return h.candidateUC.ListSaved(ctx.Request.Context(), id, page, pageSize)
	})
}

// ListFollowing godoc
// @Summary      List the companies the candidate follows
// @Tags         candidate
// @Produce      json
// @Param        page       query     int  false  "Page number"
// @Param        page_size  query     int  false  "Page size"
// @Success      200        {object}  response.Response
// @Router       /candidate/following [get]
// @Security     BearerAuth
func (h *CandidateHandler) ListFollowing(c *gin.Context) {
	h.paginatedList(c, "Followed companies", func(ctx *gin.Context, id int64, page, pageSize int) (interface{}, int64, error) {
		return h.candidateUC.ListFollowing(ctx.Request.Context(), id, page, pageSize)
	})
}
