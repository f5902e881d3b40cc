package models

import "errors"

// Credentials Учётные данные для входа на ETX-инстанс.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
	IP       string `json:"ip"`
}

// Validate Проверка заполненности всех полей формы.
// Проверяет только наличие значений, корректность решает бэкенд.
func (c Credentials) Validate() error {
	if c.Username == "" {
		return errors.New("не заполнено имя пользователя")
	}

	if c.Password == "" {
		return errors.New("не заполнен пароль")
	}

	if c.IP == "" {
		return errors.New("не заполнен IP-адрес")
	}

	return nil
}

// Key Ключ для защиты от повторной отправки формы с теми же данными.
func (c Credentials) Key() string {
	return c.Username + "@" + c.IP
}
