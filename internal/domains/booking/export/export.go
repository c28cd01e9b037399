// Package export renders the booking collection as an Excel workbook for
// the venue's front-of-house staff.
package export

import (
	"fmt"
	"time"

	"tavola/internal/domains/booking/model"
	"tavola/shared/constant"

	"github.com/xuri/excelize/v2"
)

const (
	SheetName = "Bookings"

	defaultSheet = "Sheet1"
	stampLayout  = "2006-01-02 15:04"
)

var headers = []string{"ID", "Name", "Phone", "Email", "Service", "Date", "Time", "Party", "Seating", "Notes", "Status", "Created"}

var columnWidths = map[string]float64{
	"A": 18,
	"B": 22,
	"C": 18,
	"D": 26,
	"E": 30,
	"F": 12,
	"G": 8,
	"H": 8,
	"I": 16,
	"J": 36,
	"K": 12,
	"L": 18,
}

var statusFill = map[model.Status]string{
	model.StatusUpcoming:  "#DDEBF7",
	model.StatusCompleted: "#C6EFCE",
	model.StatusCancelled: "#FFC7CE",
}

// Workbook writes one row per booking in the given order. Created
// timestamps are shown in loc.
func Workbook(bookings []model.Booking, loc *time.Location) ([]byte, error) {
	if loc == nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck

	if err := f.SetSheetName(defaultSheet, SheetName); err != nil {
		return nil, fmt.Errorf("error naming sheet: %w", err)
	}

	if err := writeHeader(f); err != nil {
		return nil, err
	}

	statusStyles, err := newStatusStyles(f)
	if err != nil {
		return nil, err
	}

	for i, b := range bookings {
		row := i + 2

		values := []any{
			b.ID,
			b.Name,
			b.Phone,
			b.Email,
			string(b.Service),
			b.Date,
			b.Time,
			b.PartySize,
			string(b.Seating),
			b.Notes,
			string(b.Status),
			b.CreatedAt.In(loc).Format(stampLayout),
		}

		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err = f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, fmt.Errorf("error writing row %d: %w", row, err)
		}

		if style, ok := statusStyles[b.Status]; ok {
			statusCell, _ := excelize.CoordinatesToCellName(len(headers)-1, row)
			if err = f.SetCellStyle(SheetName, statusCell, statusCell, style); err != nil {
				return nil, fmt.Errorf("error styling row %d: %w", row, err)
			}
		}
	}

	for col, width := range columnWidths {
		if err = f.SetColWidth(SheetName, col, col, width); err != nil {
			return nil, fmt.Errorf("error sizing column %s: %w", col, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}

// FileName names the export after the business and the export time.
func FileName(business string, at time.Time) string {
	return fmt.Sprintf("bookings_%s_%s.xlsx", slug(business), at.Format(constant.DateFormat))
}

func writeHeader(f *excelize.File) error {
	row := make([]any, len(headers))
	for i, h := range headers {
		row[i] = h
	}

	if err := f.SetSheetRow(SheetName, "A1", &row); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E2EFDA"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}

	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err = f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("error styling header: %w", err)
	}

	if err = f.SetPanes(SheetName, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return fmt.Errorf("error freezing header: %w", err)
	}

	return nil
}

func newStatusStyles(f *excelize.File) (map[model.Status]int, error) {
	styles := make(map[model.Status]int, len(statusFill))

	for status, color := range statusFill {
		style, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return nil, fmt.Errorf("error creating %s style: %w", status, err)
		}

		styles[status] = style
	}

	return styles, nil
}

func slug(value string) string {
	out := make([]rune, 0, len(value))
	dash := false

	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
			dash = false
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
			dash = false
		case !dash && len(out) > 0:
			out = append(out, '_')
			dash = true
		}
	}

	if dash {
		out = out[:len(out)-1]
	}

	if len(out) == 0 {
		return "export"
	}

	return string(out)
}
