package http

import (
	"net/http"

	"github.com/dkurenkov/exercise-tracker/backend/internal/common/httpmetrics"
	"github.com/dkurenkov/exercise-tracker/backend/internal/common/logger"
)

// BuildBaseHandler wraps a handler in the ambient middleware chain
// shared by every endpoint.
func BuildBaseHandler(log *logger.Logger, maxRequestSize int64, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	maxSize := MaxRequestSizeMiddleware(maxRequestSize)

	return SecurityHeadersMiddleware(CORSMiddleware(recovery(TraceIDMiddleware(maxSize(metrics.Wrap(handler))))))
}
