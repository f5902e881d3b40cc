package view

// LoginView Модель шаблона страницы входа. При неудачном входе форма
// возвращается с теми же значениями всех полей.
type LoginView struct {
	Username string
	Password string
	IP       string
	Notice   string
}
