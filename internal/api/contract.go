package api

import "pos-versions-dashboard/internal/report"

type GetReportResponse = report.View

type GetFiltersResponse = report.Sidebar

type ErrorResponse struct {
	Error string `json:"error"`
}
