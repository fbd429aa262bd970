package web

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
)

var untrackedPrefixes = []string{
	"/static/",
	"/images/",
	"/api/",
	"/metrics",
	"/favicon",
}

func generateSalt() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("generate hashing salt: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}

// hashIP returns a salted, truncated digest so raw addresses never reach logs.
func (s *Server) hashIP(ip string) string {
	hash := sha256.New()
	hash.Write([]byte(ip + s.salt))
	return hex.EncodeToString(hash.Sum(nil))[:16]
}

// visitorTracking counts page visits per route. Static assets, API calls and
// visitors sending Do Not Track are skipped.
func (s *Server) visitorTracking() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, prefix := range untrackedPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}
		if c.GetHeader("DNT") == "1" {
			c.Next()
			return
		}

		c.Next()

		route := c.FullPath()
		if route == "" {
			return
		}
		s.metrics.pageVisits.WithLabelValues(route).Inc()
		s.log.Debug("page visit",
			slog.String("route", route),
			slog.String("visitor", s.hashIP(c.ClientIP())),
		)
	}
}
