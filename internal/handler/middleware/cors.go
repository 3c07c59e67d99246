package middleware

import (
	"log/slog"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware allows the hotel frontend origins to call the API.
// AllowCredentials must stay on: auth rides on HttpOnly cookies, and the
// browser drops them on cross-origin requests without it.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	slog.Info("CORS configured", "allow_origins", cfg.AllowOrigins, "allow_credentials", cfg.AllowCredentials)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
