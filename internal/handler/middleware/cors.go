package middleware

import (
	"log/slog"
	"slices"

	"stayhub/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the policy for the marketplace's browser clients
// from configuration. A wildcard origin cannot be combined with credentials,
// so that combination downgrades to credential-less responses instead of
// failing at boot.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowCredentials := cfg.AllowCredentials
	if allowCredentials && slices.Contains(cfg.AllowOrigins, "*") {
		slog.Warn("wildcard CORS origin with credentials; disabling credentials")
		allowCredentials = false
	}

	policy := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(policy)
}
