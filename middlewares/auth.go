package middlewares

import (
	"net/http"

	"dineinn/utils"

	"github.com/gin-gonic/gin"
)

// OwnerAuth requires a valid owner token (cookie or bearer header).
func OwnerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.TokenFromRequest(c, utils.OwnerCookie)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing token"})
			c.Abort()
			return
		}
		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil || claims.Role != utils.RoleOwner {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}
		c.Set("ownerId", claims.UserID)
		c.Next()
	}
}

// CustomerAuth requires a registered customer. Order creation sits
// behind this: guests can browse, but the first order needs registration.
func CustomerAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := utils.TokenFromRequest(c, utils.CustomerCookie)
		if tokenStr == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "registration required"})
			c.Abort()
			return
		}
		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil || claims.Role != utils.RoleCustomer {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "registration required"})
			c.Abort()
			return
		}
		c.Set("customerId", claims.UserID)
		c.Next()
	}
}

// Identify resolves whatever identity the request carries without ever
// rejecting it: a customer token if valid, and the guest session id from
// cookie or ?sessionId=. Listing endpoints degrade gracefully on top of
// this.
func Identify(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenStr := utils.TokenFromRequest(c, utils.CustomerCookie); tokenStr != "" {
			if claims, err := utils.ParseToken(tokenStr, secret); err == nil && claims.Role == utils.RoleCustomer {
				c.Set("customerId", claims.UserID)
			}
		}
		session := c.Query("sessionId")
		if session == "" {
			session, _ = c.Cookie(utils.GuestCookie)
		}
		if session != "" {
			c.Set("guestSession", session)
		}
		c.Next()
	}
}
