// Package web holds the small pieces shared by every HTTP controller:
// acting-user extraction and application-error to status mapping. The identity
// layer itself is an external collaborator; the only fact it hands this
// service is the authenticated user's identifier.
package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// UserIDHeader carries the authenticated acting user's identifier, set by the
// fronting identity layer.
const UserIDHeader = "X-User-ID"

const ctxUserKey = "acting_user_id"

// RequireUser aborts with 401 when the acting-user header is absent.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(UserIDHeader)
		if id == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing " + UserIDHeader + " header"})
			return
		}
		c.Set(ctxUserKey, id)
		c.Next()
	}
}

// ActingUser returns the authenticated user id placed by RequireUser.
func ActingUser(c *gin.Context) string {
	return c.GetString(ctxUserKey)
}

// Fail writes the HTTP response for an application error.
func Fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperrors.CodeOf(err) {
	case apperrors.CodeInvalidArgument:
		status = http.StatusBadRequest
	case apperrors.CodeNotFound:
		status = http.StatusNotFound
	case apperrors.CodeAlreadyExists:
		status = http.StatusConflict
	case apperrors.CodePermissionDenied:
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error(), "code": apperrors.CodeOf(err)})
}
