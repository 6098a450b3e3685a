package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"

	"github.com/snapchallan/rewards/internal/logger"
	"go.uber.org/zap"
)

type gzipResponseWriter struct {
	io.Writer
	http.ResponseWriter
}

func (w gzipResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// WithGzip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise support.
func WithGzip() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Content-Encoding") == "gzip" {
				gz, err := gzip.NewReader(r.Body)
				if err != nil {
					http.Error(w, "malformed gzip body", http.StatusBadRequest)
					return
				}
				defer closeGzip(gz)

				r.Body = io.NopCloser(gz)
			}

			if strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
				w.Header().Set("Content-Encoding", "gzip")
				gz := gzip.NewWriter(w)
				defer closeGzip(gz)

				w = gzipResponseWriter{Writer: gz, ResponseWriter: w}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func closeGzip(c io.Closer) {
	if err := c.Close(); err != nil {
		logger.Log.Error("failed to close gzip stream", zap.Error(err))
	}
}
