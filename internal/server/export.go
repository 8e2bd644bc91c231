package server

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shareit/internal/config"
	"shareit/internal/database"

	"github.com/rs/zerolog"
	"github.com/xuri/excelize/v2"
)

// bookingExporter writes booking reports as xlsx files.
type bookingExporter struct {
	db     *database.DB
	cfg    config.ExportConfig
	logger zerolog.Logger
}

func newBookingExporter(db *database.DB, cfg config.ExportConfig, logger *zerolog.Logger) *bookingExporter {
	return &bookingExporter{
		db:     db,
		cfg:    cfg,
		logger: logger.With().Str("component", "export").Logger(),
	}
}

// export writes every booking touching the window into an xlsx file under
// the exports directory and returns the file path.
func (e *bookingExporter) export(ctx context.Context, startDate, endDate time.Time) (string, error) {
	if err := os.MkdirAll(e.cfg.Path, 0o755); err != nil {
		return "", fmt.Errorf("error creating export directory: %v", err)
	}

	bookings, err := e.db.BookingsBetween(ctx, startDate, endDate)
	if err != nil {
		return "", fmt.Errorf("error getting bookings: %v", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Bookings"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	_ = f.SetCellValue(sheetName, "A1", fmt.Sprintf("Period: %s - %s",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02")))
	_ = f.MergeCell(sheetName, "A1", "F1")
	titleStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	_ = f.SetCellStyle(sheetName, "A1", "A1", titleStyle)

	headers := []string{"ID", "Item", "Booker", "Start", "End", "Status"}
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font: &excelize.Font{Bold: true},
	})
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		_ = f.SetCellValue(sheetName, cell, h)
		_ = f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, b := range bookings {
		row := i + 3
		itemName := ""
		if b.Item != nil {
			itemName = b.Item.Name
		}
		bookerName := ""
		if b.Booker != nil {
			bookerName = b.Booker.Name
		}
		values := []any{
			b.ID,
			itemName,
			bookerName,
			b.Start.Format("2006-01-02 15:04"),
			b.End.Format("2006-01-02 15:04"),
			string(b.Status),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row)
			_ = f.SetCellValue(sheetName, cell, v)
		}
	}

	_ = f.SetColWidth(sheetName, "B", "C", 25)
	_ = f.SetColWidth(sheetName, "D", "E", 20)
	_ = f.DeleteSheet("Sheet1")

	fileName := fmt.Sprintf("bookings_%s_to_%s.xlsx",
		startDate.Format("2006-01-02"), endDate.Format("2006-01-02"))
	filePath := filepath.Join(e.cfg.Path, fileName)
	if err := f.SaveAs(filePath); err != nil {
		return "", fmt.Errorf("error saving file: %v", err)
	}

	e.logger.Info().Str("file_path", filePath).Int("bookings", len(bookings)).Msg("xlsx export created")
	return filePath, nil
}
