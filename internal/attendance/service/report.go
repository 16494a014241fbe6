package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/robera20/employee-attendance-management/internal/attendance/domain"
	"github.com/robera20/employee-attendance-management/internal/attendance/store"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	detailsSheet = "Details"
)

type ReportService struct {
	Store    store.Store
	Calendar *Calendar
}

type ReportParams struct {
	Type      string
	Period    string
	StartDate string // YYYY-MM-DD, inclusive
	EndDate   string // YYYY-MM-DD, inclusive
}

type Report struct {
	TotalEmployees int
	TotalPresent   int
	TotalLate      int
	TotalAbsent    int
	StartDate      string
	EndDate        string
	Type           string
	Details        []domain.EmployeeReportRow // sorted by name
}

type ReportSummary struct {
	TotalEmployees int
	TodayPresent   int
	TodayLate      int
	TodayAbsent    int // employees without a Present or Late mark today
}

// GenerateReport aggregates attendance per employee over an inclusive range
// of local days.
func (s *ReportService) GenerateReport(ctx context.Context, adminID int64, p ReportParams) (Report, error) {
	p.StartDate = strings.TrimSpace(p.StartDate)
	p.EndDate = strings.TrimSpace(p.EndDate)

	if p.StartDate == "" || p.EndDate == "" {
		return Report{}, Validation("Start date and end date are required")
	}
	start, err := time.Parse(dateLayout, p.StartDate)
	if err != nil {
		return Report{}, Validation("Start date must be in YYYY-MM-DD format")
	}
	end, err := time.Parse(dateLayout, p.EndDate)
	if err != nil {
		return Report{}, Validation("End date must be in YYYY-MM-DD format")
	}
	if start.After(end) {
		return Report{}, Validation("Start date must not be after end date")
	}

	rows, err := s.Store.Reports().EmployeeCountsBetween(ctx, adminID, p.StartDate, p.EndDate)
	if err != nil {
		return Report{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	r := Report{
		TotalEmployees: len(rows),
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Type:           p.Type,
		Details:        rows,
	}
	for _, row := range rows {
		r.TotalPresent += row.Present
		r.TotalLate += row.Late
		r.TotalAbsent += row.Absent
	}
	return r, nil
}

// Summary reports today's headline numbers for the tenant.
func (s *ReportService) Summary(ctx context.Context, adminID int64) (ReportSummary, error) {
	total, err := s.Store.Reports().CountEmployees(ctx, adminID)
	if err != nil {
		return ReportSummary{}, fmt.Errorf("failed to count employees: %w", err)
	}
	if total == 0 {
		return ReportSummary{}, nil
	}

	c, err := s.Store.Reports().StatusCountsOnDate(ctx, adminID, s.Calendar.Today())
	if err != nil {
		return ReportSummary{}, fmt.Errorf("failed to count today's attendance: %w", err)
	}

	return ReportSummary{
		TotalEmployees: total,
		TodayPresent:   c.Present,
		TodayLate:      c.Late,
		TodayAbsent:    max(total-c.Present-c.Late, 0),
	}, nil
}

// ExportXLSX generates the report and writes it to w as a workbook with a
// Summary and a Details sheet.
func (s *ReportService) ExportXLSX(ctx context.Context, adminID int64, p ReportParams, w io.Writer) error {
	r, err := s.GenerateReport(ctx, adminID, p)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	summary := [][]any{
		{"Report type", r.Type},
		{"Start date", r.StartDate},
		{"End date", r.EndDate},
		{"Total employees", r.TotalEmployees},
		{"Total present", r.TotalPresent},
		{"Total late", r.TotalLate},
		{"Total absent", r.TotalAbsent},
	}
	if err := writeRows(f, summarySheet, summary); err != nil {
		return err
	}

	if _, err := f.NewSheet(detailsSheet); err != nil {
		return fmt.Errorf("failed to create details sheet: %w", err)
	}
	details := make([][]any, 0, len(r.Details)+1)
	details = append(details, []any{"Employee ID", "Name", "Email", "Present", "Late", "Absent"})
	for _, d := range r.Details {
		details = append(details, []any{d.EmployeeID, d.Name, d.Email, d.Present, d.Late, d.Absent})
	}
	if err := writeRows(f, detailsSheet, details); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
