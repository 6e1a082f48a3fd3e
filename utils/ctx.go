package utils

import "github.com/gin-gonic/gin"

func CurrentOwnerID(c *gin.Context) uint {
	return ctxUint(c, "ownerId")
}

func CurrentCustomerID(c *gin.Context) uint {
	return ctxUint(c, "customerId")
}

// CurrentGuestSession returns the anonymous session id, or "" when the
// client sent none.
func CurrentGuestSession(c *gin.Context) string {
	if v, ok := c.Get("guestSession"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func ctxUint(c *gin.Context, key string) uint {
	v, _ := c.Get(key)
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}
