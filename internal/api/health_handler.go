package api

import (
	"net/http"
	"time"

	"github.com/ignite/linkedin-outreach/internal/pkg/httputil"
)

var startTime = time.Now()

// HealthCheck reports liveness and process uptime.
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.OK(w, map[string]any{
		"status": "ok",
		"uptime": time.Since(startTime).Round(time.Second).String(),
	})
}
