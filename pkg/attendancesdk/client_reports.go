package attendancesdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// GenerateReport aggregates attendance per employee over an inclusive range.
func (c *SDKClient) GenerateReport(ctx context.Context, req ReportRequest) (*ReportResponse, error) {
	var out ReportResponse
	if err := c.doJSON(ctx, http.MethodPost, "/reports/generate", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *SDKClient) GetReportSummary(ctx context.Context) (*ReportSummary, error) {
	var out ReportSummary
	if err := c.doJSON(ctx, http.MethodGet, "/reports/summary", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ExportReport downloads the report as an XLSX workbook.
func (c *SDKClient) ExportReport(ctx context.Context, req ReportRequest) ([]byte, error) {
	raw, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/reports/export", bytes.NewReader(raw), map[string]string{
		"Content-Type": "application/json",
	})
	if err != nil {
		return nil, err
	}
	return readBody(resp)
}
