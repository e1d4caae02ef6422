package utils

import "github.com/gin-gonic/gin"

// CurrentUserID reads the authenticated user's id from the gin context. The
// auth middleware always stores it as uint; anything else means the request
// never passed auth, so zero comes back.
func CurrentUserID(c *gin.Context) uint {
	v, ok := c.Get("userId")
	if !ok {
		return 0
	}
	id, ok := v.(uint)
	if !ok {
		return 0
	}
	return id
}

// CurrentRole reads the authenticated user's role, or "" when unauthenticated.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
