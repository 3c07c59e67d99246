// Package cookie writes and clears the auth token cookies shared by the
// guest-facing site and the back office. Both tokens are HttpOnly so the
// browser never exposes them to scripts.
package cookie

import (
	"net/http"
	"time"

	"github.com/Favour-Onyenike/la-posh-hotel-sub001/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "access_token"
	RefreshTokenCookieName = "refresh_token"
)

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	setToken(c, cfg, AccessTokenCookieName, accessToken, int(accessExpiry.Seconds()))
	setToken(c, cfg, RefreshTokenCookieName, refreshToken, int(refreshExpiry.Seconds()))
}

// ClearTokenCookies expires both token cookies, logging the session out on
// the next request.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	setToken(c, cfg, AccessTokenCookieName, "", -1)
	setToken(c, cfg, RefreshTokenCookieName, "", -1)
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func setToken(c *gin.Context, cfg config.CookieConfig, name, value string, maxAge int) {
	c.SetCookie(name, value, maxAge, "/", cfg.Domain, cfg.Secure, true)
}

func sameSiteMode(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
