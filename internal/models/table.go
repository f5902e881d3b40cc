package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// TableRow Строка таблицы: отображение "колонка -> значение" с сохранением порядка ключей,
// в котором они пришли от бэкенда.
type TableRow struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewTableRow Создаёт пустую строку таблицы.
func NewTableRow() TableRow {
	return TableRow{values: make(map[string]json.RawMessage)}
}

// Set Добавляет (или заменяет) значение колонки. Новая колонка добавляется в конец.
func (r *TableRow) Set(column string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("не удалось сериализовать значение колонки %q: %w", column, err)
	}

	if r.values == nil {
		r.values = make(map[string]json.RawMessage)
	}

	if _, ok := r.values[column]; !ok {
		r.keys = append(r.keys, column)
	}
	r.values[column] = raw

	return nil
}

// Keys Колонки строки в исходном порядке.
func (r TableRow) Keys() []string {
	keys := make([]string, len(r.keys))
	copy(keys, r.keys)

	return keys
}

// Value Текстовое представление значения колонки.
// Для отсутствующей колонки возвращает пустую строку и false.
func (r TableRow) Value(column string) (string, bool) {
	raw, ok := r.values[column]
	if !ok {
		return "", false
	}

	return cellText(raw), true
}

// cellText Преобразует JSON-значение ячейки в текст для отображения.
func cellText(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)

	switch {
	case len(trimmed) == 0, bytes.Equal(trimmed, []byte("null")):
		return ""
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err == nil {
			return s
		}
	}

	return string(trimmed)
}

// UnmarshalJSON Разбирает JSON-объект, запоминая порядок ключей.
func (r *TableRow) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}

	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.New("строка таблицы должна быть JSON-объектом")
	}

	row := NewTableRow()

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}

		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("неожиданный ключ строки таблицы: %v", tok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return fmt.Errorf("ошибка чтения значения колонки %q: %w", key, err)
		}

		if _, seen := row.values[key]; !seen {
			row.keys = append(row.keys, key)
		}
		row.values[key] = raw
	}

	// закрывающая скобка объекта
	if _, err = dec.Token(); err != nil {
		return err
	}

	*r = row

	return nil
}

// MarshalJSON Сериализует строку с сохранением порядка колонок.
func (r TableRow) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')
	for i, key := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteString(strconv.Quote(key))
		buf.WriteByte(':')
		buf.Write(r.values[key])
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// Table Набор строк таблицы. nil означает, что таблица не была передана,
// пустой (но не nil) слайс - что таблица передана, но строк в ней нет.
type Table []TableRow

// Columns Колонки таблицы - ключи первой строки в исходном порядке.
// Остальные строки отображаются по этим же колонкам.
func (t Table) Columns() []string {
	if len(t) == 0 {
		return []string{}
	}

	return t[0].Keys()
}
