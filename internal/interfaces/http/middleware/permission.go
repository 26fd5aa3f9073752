package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storefront/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// RequireStaff rejects requests whose token lacks the is_staff claim.
// It must run after JWTAuth.
func RequireStaff(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		claims := GetJWTClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeUnauthorized,
				"Authentication credentials were not provided",
				GetRequestID(c),
			))
			return
		}
		if !claims.IsStaff {
			log.Info("staff route denied",
				zap.String("user_id", claims.UserID),
				zap.String("method", c.Request.Method),
				zap.String("path", c.FullPath()),
			)
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeForbidden,
				"You do not have permission to perform this action",
				GetRequestID(c),
			))
			return
		}
		c.Next()
	}
}

// StaffForWrites lets safe methods through and applies RequireStaff to
// the rest, for resources that are publicly readable
func StaffForWrites(log *zap.Logger) gin.HandlerFunc {
	requireStaff := RequireStaff(log)
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			requireStaff(c)
		}
	}
}
