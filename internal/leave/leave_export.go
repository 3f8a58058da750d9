package leave

import (
	"go-timeoff/internal/events"
	"go-timeoff/internal/notification"

	"github.com/xuri/excelize/v2"
)

const ExportContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// buildWorkbook lays out one sheet per persisted form type, using the same
// columns as the live spreadsheet plus the review status.
func buildWorkbook(items []LeaveRequest, organizationName string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DCE6F1"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, err
	}

	formTypes := []string{events.FormDayOff, events.FormVacation}
	next := map[string]int{}
	for i, formType := range formTypes {
		tab, _ := notification.TabFor(formType)
		if i == 0 {
			if err := f.SetSheetName("Sheet1", tab); err != nil {
				return nil, err
			}
		} else if _, err := f.NewSheet(tab); err != nil {
			return nil, err
		}

		header := notification.Header(formType)
		if err := f.SetSheetRow(tab, "A1", &header); err != nil {
			return nil, err
		}
		last, _ := excelize.ColumnNumberToName(len(header))
		if err := f.SetCellStyle(tab, "A1", last+"1", headerStyle); err != nil {
			return nil, err
		}
		if err := f.SetColWidth(tab, "A", last, 20); err != nil {
			return nil, err
		}
		next[formType] = 2
	}

	for _, lr := range items {
		ev := toNotification(lr)
		row, err := notification.BuildRow(ev, organizationName)
		if err != nil {
			return nil, err
		}
		row = append(row, lr.Status)

		tab, _ := notification.TabFor(ev.FormType)
		cell, _ := excelize.CoordinatesToCellName(1, next[ev.FormType])
		if err := f.SetSheetRow(tab, cell, &row); err != nil {
			return nil, err
		}
		next[ev.FormType]++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
