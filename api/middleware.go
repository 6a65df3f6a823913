package api

import (
	"github.com/gin-gonic/gin"
)

// Origins allowed to call this API cross-origin: the production site plus
// local development servers.
var allowedOrigins = []string{
	"https://starmind.info",
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {

		origin := c.GetHeader("Origin")
		for _, allowed := range allowedOrigins {
			if origin == allowed {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Access-Control-Allow-Credentials", "true")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
				c.Header("Access-Control-Allow-Methods", "POST,OPTIONS,GET")
				c.Header("Vary", "Origin")
				break
			}
		}

		// Preflight requests fall through to the registered OPTIONS handler

		c.Next()
	}
}
