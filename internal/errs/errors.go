package errs

import "fmt"

// ErrRejected Кастомная ошибка, сообщающая, что бэкенд отклонил запрос (ответил `ok: false`).
// Message - текст от бэкенда, показывается пользователю как есть.
type ErrRejected struct {
	Operation string
	Message   string
}

func (r *ErrRejected) Error() string {
	return fmt.Sprintf("бэкенд отклонил операцию `%s`: %s", r.Operation, r.Message)
}

func NewErrRejected(operation, message string) *ErrRejected {
	return &ErrRejected{
		Operation: operation,
		Message:   message,
	}
}

// ErrTransport Кастомная ошибка сетевого уровня: запрос не дошёл до бэкенда,
// оборвался или ответ не удалось разобрать как JSON.
type ErrTransport struct {
	Operation string
	Err       error
}

func (t *ErrTransport) Error() string {
	return fmt.Sprintf("ошибка запроса `%s` к бэкенду: %v", t.Operation, t.Err)
}

func (t *ErrTransport) Unwrap() error {
	return t.Err
}

func NewErrTransport(operation string, err error) *ErrTransport {
	if err == nil {
		err = fmt.Errorf("неизвестная ошибка")
	}

	return &ErrTransport{
		Operation: operation,
		Err:       err,
	}
}

// ErrInFlight Кастомная ошибка, сообщающая, что такое же действие уже выполняется.
type ErrInFlight struct {
	Action string
}

func (f *ErrInFlight) Error() string {
	return fmt.Sprintf("действие `%s` уже выполняется", f.Action)
}

func NewErrInFlight(action string) *ErrInFlight {
	return &ErrInFlight{Action: action}
}
