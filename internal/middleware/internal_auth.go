package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/snapchallan/rewards/internal/hash"
	"github.com/snapchallan/rewards/internal/logger"
	"go.uber.org/zap"
)

const SignatureHeader = "X-Internal-Signature"

// InternalAuth verifies the HMAC body signature on service-to-service
// webhooks. With an empty key the check is disabled, matching local runs
// without a shared secret.
func InternalAuth(key string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if err := hash.VerifyHash(string(body), key, r.Header.Get(SignatureHeader)); err != nil {
				logger.Log.Warn("webhook signature rejected", zap.String("path", r.URL.Path))
				http.Error(w, "invalid signature", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
