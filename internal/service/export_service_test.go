package service

import (
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
)

func TestExportService_ExportSchedules(t *testing.T) {
	f := setupTestScheduleService(t)
	f.insert(t, f.saintA, "2025-06-01", "2025-06-20")
	f.insert(t, f.saintB, "2025-07-01", "2025-07-05")
	f.insert(t, f.saintA, "2025-12-01", "2025-12-05")

	svc := NewExportService(f.repo, FixedClock(testToday), zap.NewNop())
	buf, filename, err := svc.ExportSchedules(context.Background(), &dto.ExportSchedulesRequest{
		From: "2025-06-01",
		To:   "2025-07-31",
	})
	if err != nil {
		t.Fatalf("ExportSchedules: %v", err)
	}
	if filename != "schedules_2025-06-01_2025-07-31.xlsx" {
		t.Errorf("filename = %s", filename)
	}

	wb, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()

	rows, err := wb.GetRows(exportSheet)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(rows))
	}
	if rows[0][0] != "Saint" || rows[0][5] != "Start Date" {
		t.Errorf("unexpected header %v", rows[0])
	}

	first := rows[1]
	if first[0] != f.saintA.Name || first[2] != f.locX.Name || first[3] != "Mumbai" {
		t.Errorf("unexpected first row %v", first)
	}
	if first[5] != "2025-06-01" || first[6] != "2025-06-20" || first[7] != "20" || first[8] != "current" {
		t.Errorf("unexpected dates/status %v", first)
	}
	if rows[2][8] != "upcoming" {
		t.Errorf("second row status = %s", rows[2][8])
	}
}

func TestExportService_SaintFilterAndValidation(t *testing.T) {
	f := setupTestScheduleService(t)
	f.insert(t, f.saintA, "2025-06-01", "2025-06-20")
	f.insert(t, f.saintB, "2025-07-01", "2025-07-05")
	svc := NewExportService(f.repo, FixedClock(testToday), zap.NewNop())

	buf, filename, err := svc.ExportSchedules(context.Background(), &dto.ExportSchedulesRequest{SaintID: f.saintB.SaintID})
	if err != nil {
		t.Fatalf("ExportSchedules: %v", err)
	}
	if filename != "schedules.xlsx" {
		t.Errorf("filename = %s", filename)
	}
	wb, err := excelize.OpenReader(buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	rows, _ := wb.GetRows(exportSheet)
	if len(rows) != 2 || rows[1][0] != f.saintB.Name {
		t.Errorf("unexpected rows %v", rows)
	}

	_, _, err = svc.ExportSchedules(context.Background(), &dto.ExportSchedulesRequest{From: "2025-08-01", To: "2025-07-01"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}
