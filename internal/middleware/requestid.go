package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/trsv-dev/etx-disk-dashboard/internal/contextkeys"
)

// RequestIDHeader Заголовок с идентификатором запроса.
const RequestIDHeader = "X-Request-ID"

// RequestID Middleware, добавляющий идентификатор запроса в контекст и в заголовок ответа.
// Если клиент прислал X-Request-ID, используется он, иначе генерируется UUID v7.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(RequestIDHeader)

		if requestID == "" {
			id, err := uuid.NewV7()
			if err != nil {
				id = uuid.New()
			}
			requestID = id.String()
		}

		w.Header().Set(RequestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), contextkeys.RequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID Возвращает идентификатор запроса из контекста или пустую строку.
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(contextkeys.RequestID).(string); ok {
		return id
	}

	return ""
}
