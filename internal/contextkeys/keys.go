package contextkeys

type contextKey string

// RequestID Ключ контекста с идентификатором запроса.
const RequestID contextKey = "request_id"
