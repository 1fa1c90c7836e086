package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	authz "github.com/yigit/advisory/internal/app/auth"
	"github.com/yigit/advisory/internal/app/models"
	"github.com/yigit/advisory/internal/app/models/dto"
	"github.com/yigit/advisory/internal/pkg/auth"
	"github.com/yigit/advisory/internal/pkg/helpers"
)

// Context keys set by JWTAuth
const (
	AccountIDKey = "accountID"
	EmailKey     = "email"
	RoleTypeKey  = "roleType"
	StudentIDKey = "studentID"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtService}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		// Browsers cannot set headers on a websocket upgrade, so the token may come as a query parameter
		if authHeader == "" {
			if queryToken := c.Query("token"); queryToken != "" {
				authHeader = queryToken
			}
		}

		if authHeader == "" {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Authorization header missing")
			return
		}

		var tokenString string
		if strings.Count(authHeader, ".") == 2 && !strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = authHeader
		} else {
			var err error
			tokenString, err = auth.ExtractBearerToken(authHeader)
			if err != nil {
				abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "Invalid token format")
				return
			}
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abortUnauthorized(c, dto.ErrorCodeExpiredToken, "Authentication failed", "Token has expired")
				return
			}
			abortUnauthorized(c, dto.ErrorCodeInvalidToken, "Authentication failed", "Invalid token")
			return
		}

		c.Set(AccountIDKey, claims.AccountID)
		c.Set(EmailKey, claims.Email)
		c.Set(RoleTypeKey, claims.Role())
		if claims.StudentID != nil {
			c.Set(StudentIDKey, *claims.StudentID)
		}

		c.Next()
	}
}

// RoleRequired middleware to check if the caller holds one of roles
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "User role not found")
			return
		}

		if !principal.HasRole(roles...) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "Access denied").
				WithDetails("You don't have sufficient permissions for this operation")
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewFailureResponse(errorDetail))
			return
		}

		c.Next()
	}
}

// StudentScope rejects students reaching for another student's record named by param
func (m *AuthMiddleware) StudentScope(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			abortUnauthorized(c, dto.ErrorCodeUnauthorized, "Authentication required", "User role not found")
			return
		}

		studentID, ok := helpers.ParseIDParam(c, param)
		if !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewFailureResponse(
				dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Invalid student ID").WithField(param)))
			return
		}

		if err := principal.AuthorizeStudent(studentID); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewFailureResponse(
				dto.NewErrorDetail(dto.ErrorCodeForbidden, err.Error())))
			return
		}

		c.Next()
	}
}

// PrincipalFrom reads the caller stored by JWTAuth
func PrincipalFrom(c *gin.Context) (authz.Principal, bool) {
	role, ok := c.Get(RoleTypeKey)
	if !ok {
		return authz.Principal{}, false
	}
	roleType, ok := role.(models.RoleType)
	if !ok {
		return authz.Principal{}, false
	}

	p := authz.Principal{
		AccountID: c.GetInt64(AccountIDKey),
		Email:     c.GetString(EmailKey),
		Role:      roleType,
	}
	if v, exists := c.Get(StudentIDKey); exists {
		if id, ok := v.(int64); ok {
			p.StudentID = &id
		}
	}
	return p, true
}

func abortUnauthorized(c *gin.Context, code dto.ErrorCode, message, details string) {
	errorDetail := dto.NewErrorDetail(code, message).WithDetails(details)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewFailureResponse(errorDetail))
}
