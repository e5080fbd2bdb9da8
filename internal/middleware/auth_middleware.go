package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocode/elearning/internal/app/models"
	"github.com/gocode/elearning/internal/app/models/dto"
	"github.com/gocode/elearning/internal/pkg/auth"
)

// Context keys set by the JWT middleware
const (
	ContextUserID = "userID"
	ContextRole   = "role"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// rawToken returns the Authorization header, falling back to the token query
// parameter that Swagger UI sometimes uses
func rawToken(c *gin.Context) string {
	if header := c.GetHeader("Authorization"); header != "" {
		return header
	}
	return c.Query("token")
}

func (m *AuthMiddleware) authenticate(raw string) (*auth.Claims, error) {
	tokenString, err := auth.ExtractBearerToken(raw)
	if err != nil {
		return nil, err
	}
	return m.jwtService.ValidateAndExtractClaims(tokenString)
}

func setPrincipal(c *gin.Context, claims *auth.Claims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextRole, models.Role(claims.Role))
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := rawToken(c)
		if raw == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.authenticate(raw)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			details := "Invalid token"
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				errorCode = dto.ErrorCodeExpiredToken
				details = "Token has expired"
			case errors.Is(err, auth.ErrInvalidFormat):
				details = "Invalid token format"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Authentication failed").WithDetails(details)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		setPrincipal(c, claims)
		c.Next()
	}
}

// OptionalJWTAuth attaches the principal when a valid token is present and otherwise
// lets the request through anonymously
func (m *AuthMiddleware) OptionalJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := rawToken(c); raw != "" {
			if claims, err := m.authenticate(raw); err == nil {
				setPrincipal(c, claims)
			}
		}
		c.Next()
	}
}

// RoleRequired middleware to check if user has one of the required roles.
// It must run after JWTAuth.
func (m *AuthMiddleware) RoleRequired(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := CurrentPrincipal(c)
		if p.Anonymous() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required").
				WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		for _, role := range roles {
			if p.Role == role {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
			WithDetails("You don't have sufficient permissions for this operation")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// CurrentPrincipal returns the caller attached by the JWT middleware, or an anonymous
// principal when there is none
func CurrentPrincipal(c *gin.Context) models.Principal {
	var p models.Principal
	if id, ok := c.Get(ContextUserID); ok {
		p.UserID, _ = id.(int64)
	}
	if role, ok := c.Get(ContextRole); ok {
		p.Role, _ = role.(models.Role)
	}
	return p
}
