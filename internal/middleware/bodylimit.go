package middleware

import (
	"net/http"
	"strings"

	apperrors "github.com/rishi-ann/redlix-portal/internal/errors"
	"github.com/rishi-ann/redlix-portal/internal/httputil"
)

// DefaultMaxBodySize applies to JSON endpoints other than document upload.
const DefaultMaxBodySize = 1 << 20

// BodyLimitMiddleware caps request bodies. Document uploads carry base64
// content and get the larger upload limit.
type BodyLimitMiddleware struct {
	maxSize       int64
	maxUploadSize int64
}

func NewBodyLimitMiddleware(maxSize, maxUploadSize int64) *BodyLimitMiddleware {
	if maxSize <= 0 {
		maxSize = DefaultMaxBodySize
	}
	if maxUploadSize < maxSize {
		maxUploadSize = maxSize
	}
	return &BodyLimitMiddleware{maxSize: maxSize, maxUploadSize: maxUploadSize}
}

func (m *BodyLimitMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := m.maxSize
		if isUploadPath(r.URL.Path) {
			limit = m.maxUploadSize
		}

		if r.Body != nil && r.ContentLength > limit {
			httputil.WriteError(w, apperrors.PayloadTooLarge(limit))
			return
		}

		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}

func isUploadPath(path string) bool {
	return strings.HasSuffix(path, "/documents")
}
