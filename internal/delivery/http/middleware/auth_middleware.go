package middleware

import (
	"net/http"
	"strings"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the bearer access token and stores the caller's
// identity on the context. Role-specific profile resolution happens in the
// credential middlewares below.
func AuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header required", nil)
			c.Abort()
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := tokens.Parse(tokenString, auth.KindAccess)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), claims.Subject)
		c.Set(string(domain.KeyUserRole), claims.Roles)

		c.Next()
	}
}

// HRCredential resolves the HR profile behind the authenticated user and
// loads the company's current point balance. Non-HR users are rejected.
func HRCredential(authUC domain.AuthUsecase, companyUC domain.CompanyUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))

		session, err := authUC.ResolveSession(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			c.Abort()
			return
		}
		if session.HRProfile == nil || !session.User.HasRole(domain.RoleHR) {
			response.Error(c, http.StatusForbidden, "HR credential required", nil)
			c.Abort()
			return
		}

		// The balance read here is advisory; purchases re-check it inside the
		// debit transaction.
		points, err := companyUC.GetPoints(c.Request.Context(), session.HRProfile.CompanyID)
		if err != nil {
			response.Error(c, http.StatusForbidden, "HR credential required", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserEmail), session.User.Email)
		c.Set(string(domain.KeyHRID), session.HRProfile.ID)
		c.Set(string(domain.KeyCompanyID), session.HRProfile.CompanyID)
		c.Set(string(domain.KeyPoints), points)

		c.Next()
	}
}

// CandidateCredential resolves the candidate profile behind the authenticated
// user.
func CandidateCredential(authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(string(domain.KeyUserID))

		session, err := authUC.ResolveSession(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Unauthorized", nil)
			c.Abort()
			return
		}
		if session.CandidateID == nil || !session.User.HasRole(domain.RoleCandidate) {
			response.Error(c, http.StatusForbidden, "Candidate credential required", nil)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserEmail), session.User.Email)
		c.Set(string(domain.KeyCandidateID), *session.CandidateID)

		c.Next()
	}
}

// RequireManager gates manager-only company operations. Runs after
// AuthMiddleware, which stores the token's role claims.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		rolesVal, _ := c.Get(string(domain.KeyUserRole))
		roles, _ := rolesVal.([]string)
		for _, role := range roles {
			if role == domain.RoleManager {
				c.Next()
				return
			}
		}
		response.Error(c, http.StatusForbidden, "Manager credential required", nil)
		c.Abort()
	}
}
