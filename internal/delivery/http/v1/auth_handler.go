package v1

import (
	"net/http"
	"os"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refresh_token"

type AuthHandler struct {
	authUC domain.AuthUsecase
	cfg    *config.Config
}

func NewAuthHandler(public *gin.RouterGroup, protected *gin.RouterGroup, authUC domain.AuthUsecase, cfg *config.Config) {
	handler := &AuthHandler{authUC: authUC, cfg: cfg}

	auth := public.Group("/auth")
	{
		auth.POST("/login", handler.Login)
		auth.POST("/refresh", handler.Refresh)
		auth.POST("/logout", handler.Logout)
		auth.POST("/register/candidate", handler.RegisterCandidate)
		auth.POST("/register/company", handler.RegisterCompany)
	}

	protected.GET("/auth/me", handler.Me)
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RegisterCandidateRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	Surname   string `json:"surname" binding:"required"`
	GivenName string `json:"given_name" binding:"required"`
}

type RegisterCompanyRequest struct {
	CompanyName string `json:"company_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	Surname     string `json:"surname" binding:"required"`
	GivenName   string `json:"given_name" binding:"required"`
}

func (h *AuthHandler) setRefreshCookie(c *gin.Context, token string, maxAge int) {
	secure := os.Getenv("GIN_MODE") == "release"
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(refreshCookieName, token, maxAge, "/v1/auth", "", secure, true)
}

// Login godoc
// @Summary      Log in
// @Description  Exchange credentials for an access token; the refresh token is set as an httpOnly cookie
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials  body      LoginRequest  true  "Credentials"
// @Success      200          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUC.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken, h.cfg.RefreshTokenMinutes*60)
	response.Success(c, http.StatusOK, "Logged in", gin.H{
		"access_token": pair.AccessToken,
	})
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Rotate the token pair using the refresh cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	cookie, err := c.Cookie(refreshCookieName)
	if err != nil || cookie == "" {
		c.Error(apperror.Unauthorized("Refresh token required"))
		return
	}

	pair, err := h.authUC.Refresh(c.Request.Context(), cookie)
	if err != nil {
		c.Error(err)
		return
	}

	h.setRefreshCookie(c, pair.RefreshToken, h.cfg.RefreshTokenMinutes*60)
	response.Success(c, http.StatusOK, "Token refreshed", gin.H{
		"access_token": pair.AccessToken,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Clear the refresh cookie
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setRefreshCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logged out", nil)
}

// RegisterCandidate godoc
// @Summary      Register a candidate account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration  body      RegisterCandidateRequest  true  "Registration"
// @Success      201           {object}  response.Response
// @Failure      409           {object}  response.Response
// @Router       /auth/register/candidate [post]
func (h *AuthHandler) RegisterCandidate(c *gin.Context) {
	var req RegisterCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.authUC.RegisterCandidate(c.Request.Context(), &domain.RegisterUserInput{
		Email:     req.Email,
		Password:  req.Password,
		Surname:   req.Surname,
		GivenName: req.GivenName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Account created", nil)
}

// RegisterCompany godoc
// @Summary      Register a company with its manager account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration  body      RegisterCompanyRequest  true  "Registration"
// @Success      201           {object}  response.Response
// @Failure      409           {object}  response.Response
// @Router       /auth/register/company [post]
func (h *AuthHandler) RegisterCompany(c *gin.Context) {
	var req RegisterCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	err := h.authUC.RegisterCompany(c.Request.Context(), &domain.RegisterCompanyInput{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Password:    req.Password,
		Surname:     req.Surname,
		GivenName:   req.GivenName,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Company registered", nil)
}

// Me godoc
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) Me(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	session, err := h.authUC.ResolveSession(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	data := gin.H{
		"user": session.User,
	}
	if session.HRProfile != nil {
		data["hr_profile"] = session.HRProfile
	}
	if session.CandidateID != nil {
		data["candidate_id"] = *session.CandidateID
	}
	response.Success(c, http.StatusOK, "Session", data)
}
