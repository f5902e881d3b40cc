package view

import "github.com/trsv-dev/etx-disk-dashboard/internal/models"

// DataState Состояние страницы данных.
type DataState int

const (
	// NoData Не передано ни графика, ни таблицы.
	NoData DataState = iota
	// PartialData Передано что-то одно из графика и таблицы.
	PartialData
	// FullData Переданы и график, и таблица.
	FullData
)

func (s DataState) String() string {
	switch s {
	case NoData:
		return "no_data"
	case PartialData:
		return "partial_data"
	case FullData:
		return "full_data"
	default:
		return "unknown"
	}
}

// EvaluateDataState Определяет состояние страницы по переданному payload.
// Порядок проверок важен: сначала "нет ничего", затем "не хватает хотя бы одного".
func EvaluateDataState(p *models.NavigationPayload) DataState {
	if !p.HasChart() && !p.HasTable() {
		return NoData
	}

	if !(p.HasChart() && p.HasTable()) {
		return PartialData
	}

	return FullData
}
