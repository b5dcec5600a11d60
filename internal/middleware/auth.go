package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret = []byte(os.Getenv("JWT_SECRET"))

// LoginPath is where unauthenticated actors get sent. They are never shown
// a 403 directly.
const LoginPath = "/login"

func userIDFromToken(c *gin.Context) (int, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return 0, false
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return 0, false
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return 0, false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	// Numeric claims come back as float64
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, false
	}

	return int(rawID), true
}

// AuthMiddleware guards mutating routes: a missing or invalid token
// redirects to the login flow and aborts the chain.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := userIDFromToken(c)
		if !ok {
			c.Redirect(http.StatusSeeOther, LoginPath+"?next="+c.Request.URL.Path)
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Next()
	}
}

// OptionalAuthMiddleware attaches the viewer identity when a valid token is
// present and otherwise lets the request through anonymously. Public routes
// that honor the author override need this.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := userIDFromToken(c); ok {
			c.Set("user_id", userID)
		}
		c.Next()
	}
}
