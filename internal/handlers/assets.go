package handlers

import (
	"io"
	"net/http"

	applog "dashkit/internal/log"
	"dashkit/internal/tokens"
)

// TokensCSS serves the design token stylesheet.
func TokensCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if r.Method == http.MethodHead {
		return
	}
	if _, err := io.WriteString(w, tokens.Stylesheet()); err != nil {
		applog.Error(r.Context(), "failed to write token stylesheet", "error", err)
	}
}
