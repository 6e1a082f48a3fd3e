package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	OwnerCookie    = "owner_token"
	CustomerCookie = "customer_token"
	GuestCookie    = "guest_session"
	TableCookie    = "table_no"
)

// SetIdentityCookie writes an HTTP-only identity cookie. secure must be
// true outside local development.
func SetIdentityCookie(c *gin.Context, name, value string, maxAge int, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// SetTableCookie records which physical table the scanning client sits
// at. Plain cookie, readable by the frontend.
func SetTableCookie(c *gin.Context, table string, secure bool) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     TableCookie,
		Value:    table,
		Path:     "/",
		MaxAge:   12 * 60 * 60,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest reads a token from the named cookie, falling back to
// the Authorization bearer header.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if v, err := c.Cookie(cookieName); err == nil && v != "" {
		return v
	}
	h := c.GetHeader("Authorization")
	const prefix = "Bearer "
	if len(h) > len(prefix) && h[:len(prefix)] == prefix {
		return h[len(prefix):]
	}
	return ""
}
