package middleware

import (
	"strings"

	"anke-go-api/model"
	"anke-go-api/pkg/jwt"
	"anke-go-api/pkg/response"

	"github.com/gin-gonic/gin"
)

// JWTAuthConfig controls the auth middleware.
type JWTAuthConfig struct {
	TokenType jwt.TokenType
	SkipPaths []string
}

// JWTAuth validates a bearer token and stores uid/status in the context.
func JWTAuth(config JWTAuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, path := range config.SkipPaths {
			if c.Request.URL.Path == path {
				c.Next()
				return
			}
		}

		token := getTokenFromRequest(c)
		if token == "" {
			response.Abort(c, response.AUTH_ERROR, "request carries no token")
			return
		}

		jwtManager := jwt.NewJWTManager(config.TokenType)
		claims, err := jwtManager.ParseToken(token)
		if err != nil {
			var message string
			switch err {
			case jwt.ErrTokenExpired:
				message = "authorization has expired"
			case jwt.ErrTokenMalformed:
				message = "malformed token"
			case jwt.ErrTokenNotValidYet:
				message = "token not active yet"
			default:
				message = "invalid token"
			}
			response.Abort(c, response.AUTH_ERROR, message)
			return
		}

		c.Set("uid", claims.UID)
		c.Set("status", claims.Status)
		c.Set("claims", claims)

		c.Next()
	}
}

// AppJWTAuth authenticates app-surface requests.
func AppJWTAuth() gin.HandlerFunc {
	return JWTAuth(JWTAuthConfig{TokenType: jwt.TokenTypeApp})
}

// AdminJWTAuth authenticates admin-surface requests.
func AdminJWTAuth() gin.HandlerFunc {
	return JWTAuth(JWTAuthConfig{TokenType: jwt.TokenTypeAdmin})
}

// OptionalAppAuth parses a token when present but lets guests through.
// Used by guest-capable paths (comment likes, votes).
func OptionalAppAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := getTokenFromRequest(c)
		if token != "" {
			jwtManager := jwt.NewJWTManager(jwt.TokenTypeApp)
			if claims, err := jwtManager.ParseToken(token); err == nil {
				c.Set("uid", claims.UID)
				c.Set("status", claims.Status)
			}
		}
		c.Next()
	}
}

// AdminRequired is the single admin authority check: account status must
// clear model.UserStatusAdmin. Every admin endpoint goes through this gate;
// there are no per-endpoint id allowlists.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		status, exists := c.Get("status")
		if !exists {
			response.Abort(c, response.FORBIDDEN, "missing account status")
			return
		}

		s, ok := status.(int)
		if !ok {
			response.Abort(c, response.FORBIDDEN, "malformed account status")
			return
		}

		if s < model.UserStatusAdmin {
			response.Abort(c, response.FORBIDDEN, "administrator privileges required")
			return
		}

		c.Next()
	}
}

// getTokenFromRequest pulls the token from the Authorization header, then
// the query string, then the form.
func getTokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		if len(authHeader) > 7 && strings.ToLower(authHeader[:7]) == "bearer " {
			return authHeader[7:]
		}
		return authHeader
	}

	if token := c.Query("token"); token != "" {
		return token
	}

	if token := c.PostForm("token"); token != "" {
		return token
	}

	return ""
}
