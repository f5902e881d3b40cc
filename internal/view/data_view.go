package view

import (
	"encoding/json"
	"fmt"

	"github.com/trsv-dev/etx-disk-dashboard/internal/models"
)

// DataView Модель шаблона страницы данных.
type DataView struct {
	State         DataState
	ChartJSON     string
	Columns       []string
	Rows          [][]string
	RowCount      int
	ChartFilePath string
	TableFilePath string
}

func (v DataView) IsNoData() bool      { return v.State == NoData }
func (v DataView) IsPartialData() bool { return v.State == PartialData }
func (v DataView) IsFullData() bool    { return v.State == FullData }

// RowCountLabel Подпись с количеством строк таблицы.
func (v DataView) RowCountLabel() string {
	if v.RowCount == 1 {
		return "1 row"
	}

	return fmt.Sprintf("%d rows", v.RowCount)
}

// chartFigure Объект, передаваемый компоненту графика без изменений.
type chartFigure struct {
	Data   json.RawMessage `json:"data"`
	Layout json.RawMessage `json:"layout"`
}

// NewDataView Строит модель страницы данных. График и таблица попадают в модель
// только в состоянии FullData.
func NewDataView(p *models.NavigationPayload) (DataView, error) {
	v := DataView{State: EvaluateDataState(p)}

	if v.State != FullData {
		return v, nil
	}

	figure := chartFigure{Data: p.Chart.Data, Layout: p.Chart.Layout}
	if len(figure.Data) == 0 {
		figure.Data = json.RawMessage("[]")
	}
	if len(figure.Layout) == 0 {
		figure.Layout = json.RawMessage("{}")
	}

	chartJSON, err := json.Marshal(figure)
	if err != nil {
		return DataView{}, fmt.Errorf("не удалось сериализовать график: %w", err)
	}

	columns := p.Table.Columns()
	rows := make([][]string, 0, len(p.Table))
	for _, row := range p.Table {
		cells := make([]string, len(columns))
		for i, col := range columns {
			cells[i], _ = row.Value(col)
		}
		rows = append(rows, cells)
	}

	v.ChartJSON = string(chartJSON)
	v.Columns = columns
	v.Rows = rows
	v.RowCount = len(p.Table)
	v.ChartFilePath = p.ChartFilePath
	v.TableFilePath = p.TableFilePath

	return v, nil
}
