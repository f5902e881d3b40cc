package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Chart Описание графика (plotly): трассы и layout. Содержимое не интерпретируется
// и передаётся компоненту графика как есть.
type Chart struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Layout json.RawMessage `json:"layout,omitempty"`
}

// NavigationPayload Результат входа, передаваемый со страницы входа на страницу данных.
type NavigationPayload struct {
	Chart         *Chart
	Table         Table
	ChartFilePath string
	TableFilePath string
}

// HasChart Передан ли график.
func (p *NavigationPayload) HasChart() bool {
	return p != nil && p.Chart != nil
}

// HasTable Передана ли таблица (пустая таблица тоже считается переданной).
func (p *NavigationPayload) HasTable() bool {
	return p != nil && p.Table != nil
}

// Truthy Булево значение с JSON-семантикой "истинности":
// false, 0, "", null и отсутствие поля - ложь, всё остальное - истина.
type Truthy bool

// UnmarshalJSON Разбирает любое JSON-значение в Truthy.
func (t *Truthy) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0:
		*t = false
	case bytes.Equal(trimmed, []byte("null")), bytes.Equal(trimmed, []byte("false")):
		*t = false
	case bytes.Equal(trimmed, []byte("true")):
		*t = true
	case trimmed[0] == '"':
		*t = Truthy(!bytes.Equal(trimmed, []byte(`""`)))
	case trimmed[0] == '{' || trimmed[0] == '[':
		*t = true
	default:
		n, err := strconv.ParseFloat(string(trimmed), 64)
		if err != nil {
			return err
		}
		*t = n != 0
	}

	return nil
}

// LoginResponse Ответ бэкенда на запрос входа.
type LoginResponse struct {
	OK          Truthy `json:"ok"`
	Message     string `json:"message,omitempty"`
	FigurePie   *Chart `json:"figure_pie,omitempty"`
	FigureTable Table  `json:"figure_table,omitempty"`
	PNGPath     string `json:"png_path,omitempty"`
	TablePath   string `json:"table_path,omitempty"`
}

// ToPayload Формирует NavigationPayload из успешного ответа бэкенда.
func (r *LoginResponse) ToPayload() *NavigationPayload {
	return &NavigationPayload{
		Chart:         r.FigurePie,
		Table:         r.FigureTable,
		ChartFilePath: r.PNGPath,
		TableFilePath: r.TablePath,
	}
}

// CommandSendReminder Команда бэкенду на отправку напоминания.
const CommandSendReminder = "send_reminder"

// ReminderPaths Пути к файлам на стороне бэкенда, на которые ссылается напоминание.
type ReminderPaths struct {
	PNGPath   string `json:"png_path"`
	TablePath string `json:"table_path"`
}

// Key Ключ для защиты от повторной отправки одного и того же напоминания.
func (p ReminderPaths) Key() string {
	return strings.Join([]string{p.PNGPath, p.TablePath}, "|")
}

// ReminderRequest Тело запроса к эндпоинту команд бэкенда.
type ReminderRequest struct {
	Command string        `json:"command"`
	Payload ReminderPaths `json:"payload"`
}

// NewReminderRequest Конструктор запроса на отправку напоминания.
func NewReminderRequest(paths ReminderPaths) ReminderRequest {
	return ReminderRequest{
		Command: CommandSendReminder,
		Payload: paths,
	}
}

// CommandResponse Ответ бэкенда на команду.
type CommandResponse struct {
	OK      Truthy `json:"ok"`
	Message string `json:"message,omitempty"`
}
