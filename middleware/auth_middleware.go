package middleware

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminAuthRequired guards the admin surface with the static demo credential
// pair, sent per-request as an HTTP basic-auth header. The password is
// compared against its bcrypt hash computed at startup.
func AdminAuthRequired(username string, hashedPassword []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, pass, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", `Basic realm="safarsorted-admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: No credentials provided"})
			return
		}

		userMatch := subtle.ConstantTimeCompare([]byte(user), []byte(username)) == 1
		passMatch := bcrypt.CompareHashAndPassword(hashedPassword, []byte(pass)) == nil
		if !userMatch || !passMatch {
			log.Printf("AdminAuthRequired: rejected credentials for user %q", user)
			c.Header("WWW-Authenticate", `Basic realm="safarsorted-admin"`)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid credentials"})
			return
		}

		c.Set("admin_user", user)
		c.Next()
	}
}
