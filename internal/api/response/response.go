package response

import (
	"encoding/json"
	"net/http"
)

// ReminderResponse Ответ на запрос отправки напоминания: флаг успеха и текст уведомления для пользователя.
type ReminderResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// APIError Модель возвращаемых ответов при ошибках.
type APIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON Пишет в ответ хендлера произвольные данные.
func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ReminderJSON Шаблон ответа на запрос отправки напоминания.
func ReminderJSON(w http.ResponseWriter, status int, ok bool, message string) {
	JSON(w, status, ReminderResponse{OK: ok, Message: message})
}

// ErrorJSON Шаблон для ответа с ошибкой в хендлерах.
func ErrorJSON(w http.ResponseWriter, status int, message string) {
	JSON(w, status, APIError{Code: status, Message: message})
}
