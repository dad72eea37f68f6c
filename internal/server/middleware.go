package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	applog "dashkit/internal/log"
)

// requestLogger logs one line per request once the response is written.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		applog.With("requestID", middleware.GetReqID(r.Context())).InfoContext(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"size", ww.BytesWritten(),
			"duration", time.Since(start),
			"ip", r.RemoteAddr,
		)
	})
}
