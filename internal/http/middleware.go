package httpx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// hstsMiddleware adds the Strict-Transport-Security header
func hstsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderHSTS, HSTSValue)
		next.ServeHTTP(w, r)
	})
}

// requestLogger is chi's access logger writing through slog at Info level.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	})
}
