package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/ai-tejas-firodiya/Jain-Munis/internal/dto"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/repository"
	"github.com/ai-tejas-firodiya/Jain-Munis/internal/scheduling"
)

const exportSheet = "Schedules"

var exportHeaders = []string{
	"Saint", "Title", "Location", "City", "State",
	"Start Date", "End Date", "Days", "Status",
	"Purpose", "Contact Person", "Contact Phone",
}

// ExportService spreadsheet export.
//
// The workbook is returned as a buffer; the handler sets the download
// headers. One row per schedule overlapping [from, to], ordered by start.
type ExportService interface {
	ExportSchedules(ctx context.Context, req *dto.ExportSchedulesRequest) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	clock  Clock
	logger *zap.Logger
}

// NewExportService creates an ExportService.
func NewExportService(repo *repository.Repository, clock Clock, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, clock: clock, logger: logger}
}

func (s *exportService) ExportSchedules(ctx context.Context, req *dto.ExportSchedulesRequest) (*bytes.Buffer, string, error) {
	// 1. window
	from, err := parseOptionalDate("from", req.From)
	if err != nil {
		return nil, "", err
	}
	to, err := parseOptionalDate("to", req.To)
	if err != nil {
		return nil, "", err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, "", validationError("to must not be before from")
	}

	// 2. rows
	schedules, _, err := s.repo.Schedule.List(ctx, repository.ScheduleFilter{
		SaintID: req.SaintID,
		From:    from,
		To:      to,
	})
	if err != nil {
		s.logger.Error("failed to list schedules for export", zap.Error(err))
		return nil, "", err
	}

	// 3. workbook
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return nil, "", err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(exportSheet, cell, h)
		f.SetCellStyle(exportSheet, cell, cell, headerStyle)
	}
	f.SetColWidth(exportSheet, "A", "A", 28)
	f.SetColWidth(exportSheet, "B", "B", 16)
	f.SetColWidth(exportSheet, "C", "C", 30)
	f.SetColWidth(exportSheet, "D", "E", 16)
	f.SetColWidth(exportSheet, "F", "G", 12)
	f.SetColWidth(exportSheet, "H", "I", 10)
	f.SetColWidth(exportSheet, "J", "L", 22)

	today := s.clock.Today()
	for i := range schedules {
		sch := &schedules[i]
		row := i + 2

		var saintName, saintTitle, locName, city, state string
		if sch.Saint != nil {
			saintName, saintTitle = sch.Saint.Name, sch.Saint.Title
		}
		if sch.Location != nil {
			locName, city, state = sch.Location.Name, sch.Location.City, sch.Location.State
		}

		values := []interface{}{
			saintName, saintTitle, locName, city, state,
			sch.StartDate.String(), sch.EndDate.String(), sch.Range().Days(),
			string(scheduling.Classify(sch.Range(), today)),
			sch.Purpose, sch.ContactPerson, sch.ContactPhone,
		}
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			s.logger.Error("failed to write export row", zap.Int("row", row), zap.Error(err))
			return nil, "", err
		}
	}

	if len(schedules) > 0 {
		last, _ := excelize.CoordinatesToCellName(len(exportHeaders), len(schedules)+1)
		f.AutoFilter(exportSheet, "A1:"+last, nil)
	}
	f.SetPanes(exportSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	// 4. buffer
	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("failed to render workbook", zap.Error(err))
		return nil, "", err
	}

	return buf, exportFilename(from, to), nil
}

func exportFilename(from, to scheduling.Date) string {
	switch {
	case from.IsZero() && to.IsZero():
		return "schedules.xlsx"
	case to.IsZero():
		return fmt.Sprintf("schedules_from_%s.xlsx", from)
	case from.IsZero():
		return fmt.Sprintf("schedules_until_%s.xlsx", to)
	}
	return fmt.Sprintf("schedules_%s_%s.xlsx", from, to)
}
