package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/advisory/internal/app/models/dto"
)

// BindJSON binds and validates the request body, writing a 400 response on failure
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewFailureResponse(dto.HandleValidationError(err)))
		return false
	}
	return true
}

// RequireJSON rejects bodies that are not declared as JSON on write methods
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch:
			if c.Request.ContentLength != 0 && c.ContentType() != gin.MIMEJSON {
				errorDetail := dto.NewErrorDetail(dto.ErrorCodeBadRequest, "Unsupported content type").
					WithDetails("Request body must be application/json")
				c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, dto.NewFailureResponse(errorDetail))
				return
			}
		}
		c.Next()
	}
}

func internalErrorResponse() dto.APIResponse {
	return dto.NewFailureResponse(dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
}
