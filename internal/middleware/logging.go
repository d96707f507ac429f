package middleware

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

type responseData struct {
	status int
	size   int
}

type loggingWriter struct {
	http.ResponseWriter
	data *responseData
}

func (lw *loggingWriter) Write(b []byte) (int, error) {
	n, err := lw.ResponseWriter.Write(b)
	lw.data.size += n
	return n, err
}

func (lw *loggingWriter) WriteHeader(code int) {
	lw.ResponseWriter.WriteHeader(code)
	lw.data.status = code
}

// WithLogging пишет в лог метод, путь, статус, размер ответа и длительность.
// С nil-логгером запросы только проксируются.
func WithLogging(logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			data := &responseData{status: http.StatusOK}
			next.ServeHTTP(&loggingWriter{ResponseWriter: w, data: data}, r)

			if logger == nil {
				return
			}
			logger.Infow("request",
				"method", r.Method,
				"uri", r.RequestURI,
				"status", data.status,
				"size", data.size,
				"duration", time.Since(start),
			)
		})
	}
}
