package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/notekeeper/internal/server/handlers"
	"github.com/iudanet/notekeeper/internal/server/jwt"
	"github.com/iudanet/notekeeper/pkg/api"
)

// DeviceIDHeader заголовок с идентификатором устройства клиента
const DeviceIDHeader = "X-Device-ID"

// TokenValidator проверяет access токены
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware создает middleware для проверки JWT токена.
// user_id берется из токена, device_id из заголовка X-Device-ID.
func AuthMiddleware(logger *slog.Logger, tokens TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("Missing Authorization header", "path", r.URL.Path)
				writeError(w, http.StatusUnauthorized, api.CodeUnauthorized, "missing token")
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("Invalid Authorization header format")
				writeError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid token format")
				return
			}

			claims, err := tokens.ValidateAccessToken(parts[1])
			if err != nil {
				logger.Warn("Invalid access token", "error", err)
				writeError(w, http.StatusUnauthorized, api.CodeUnauthorized, "invalid token")
				return
			}

			deviceID := r.Header.Get(DeviceIDHeader)
			ctx := handlers.WithUser(r.Context(), claims.UserID, deviceID)

			logger.Debug("User authenticated", "user_id", claims.UserID, "device_id", deviceID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
