package http

import (
	"net/http"

	"github.com/google/uuid"
)

// withTraceID assigns every incoming request a trace id, echoes it back in
// the X-Trace-ID response header, and binds it to the request-scoped logger
// so all log lines of one request can be correlated.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		w.Header().Set("X-Trace-ID", traceID)

		childLogger := h.logger.With().Str("trace_id", traceID).Logger()
		ctx := childLogger.WithContext(r.Context())

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
