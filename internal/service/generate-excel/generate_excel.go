package generate_excel

import (
	"context"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"shopfloor/internal/filter"
	"shopfloor/internal/storage"
)

const (
	sheetOrders     = "Наряды"
	sheetOperations = "Операции"
)

type GenerateExcelSource interface {
	WorkOrders() []storage.WorkOrder
}

type GenerateExcelService struct {
	source GenerateExcelSource
	now    func() time.Time
}

func NewGenerateService(source GenerateExcelSource) *GenerateExcelService {
	return &GenerateExcelService{source: source, now: time.Now}
}

// GenerateExcel строит отчёт по нарядам, прошедшим фильтр, и их операциям.
func (g *GenerateExcelService) GenerateExcel(ctx context.Context, criteria filter.Criteria) ([]byte, error) {
	const op = "service.generate_excel.GenerateExcel"

	orders := filter.List(g.source.WorkOrders(), criteria, filter.WorkOrderFields)
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetOrders); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, err := f.NewSheet(sheetOperations); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// --- СТИЛИ ---
	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: header style: %w", op, err)
	}

	orderHeaders := []string{"№ Наряда", "Изделие", "Заказчик", "Площадка", "Статус", "Выпущено", "План", "Прогресс, %", "Срок", "Время, ч:м:с"}
	opHeaders := []string{"№ Наряда", "Шаг", "Операция", "Участок", "Статус", "Время, ч:м:с", "Секунд", "Завершено"}

	writeHeader(f, sheetOrders, orderHeaders, headerStyle)
	writeHeader(f, sheetOperations, opHeaders, headerStyle)

	opRow := 2
	for i, wo := range orders {
		row := i + 2

		var total int64
		for _, o := range wo.Operations {
			total += o.TimerSeconds

			completed := ""
			if o.CompletedAt != nil {
				completed = o.CompletedAt.Format("2006-01-02 15:04:05")
			}
			setRow(f, sheetOperations, opRow, wo.Number, o.Sequence, o.Name, o.WorkCenter, string(o.Status),
				FormatSeconds(o.TimerSeconds), o.TimerSeconds, completed)
			opRow++
		}

		due := ""
		if !wo.DueDate.IsZero() {
			due = wo.DueDate.Format("2006-01-02")
		}
		setRow(f, sheetOrders, row, wo.Number, wo.Product, wo.Customer, wo.SiteID, string(wo.Status),
			wo.Produced, wo.Target, wo.Progress, due, FormatSeconds(total))
	}

	// --- ФИНАЛЬНЫЕ ШТРИХИ ---
	for _, sheet := range []string{sheetOrders, sheetOperations} {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return nil, fmt.Errorf("%s: panes: %w", op, err)
		}
		_ = f.SetColWidth(sheet, "A", "J", 16)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return buf.Bytes(), nil
}

// FileName: имя файла отчёта с отметкой времени.
func (g *GenerateExcelService) FileName() string {
	return fmt.Sprintf("Shopfloor_Report_%s.xlsx", g.now().Format("2006-01-02_150405"))
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) {
	for i, name := range headers {
		f.SetCellValue(sheet, cellName(i+1, 1), name)
	}
	f.SetCellStyle(sheet, "A1", cellName(len(headers), 1), style)
}

func setRow(f *excelize.File, sheet string, row int, values ...interface{}) {
	for i, v := range values {
		f.SetCellValue(sheet, cellName(i+1, row), v)
	}
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

// FormatSeconds: 3723 -> "01:02:03".
func FormatSeconds(total int64) string {
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total%3600/60, total%60)
}
