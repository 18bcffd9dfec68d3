package handler

import (
	"fmt"
	"net/http"

	"reviewer/dataset"
	"reviewer/model"

	"github.com/labstack/echo/v4"
)

// =======API Handlers=======

// ExportFiltered streams the current filtered view as CSV, with the
// review status appended as an extra column.
func (m *ReviewHandler) ExportFiltered(c echo.Context) error {
	return m.exportSubset(c, "filtered_data.csv", func(filtered []*model.Record, reviews *model.ReviewSet) ([]*model.Record, string) {
		return filtered, "filtered records"
	})
}

// ExportReviewed streams the reviewed subset of the filtered view.
func (m *ReviewHandler) ExportReviewed(c echo.Context) error {
	return m.exportSubset(c, "reviewed_items.csv", func(filtered []*model.Record, reviews *model.ReviewSet) ([]*model.Record, string) {
		reviewed, _ := dataset.Partition(filtered, reviews)
		return reviewed, "reviewed records"
	})
}

// ExportNotReviewed streams the not yet reviewed subset of the filtered
// view.
func (m *ReviewHandler) ExportNotReviewed(c echo.Context) error {
	return m.exportSubset(c, "non_reviewed_items.csv", func(filtered []*model.Record, reviews *model.ReviewSet) ([]*model.Record, string) {
		_, notReviewed := dataset.Partition(filtered, reviews)
		return notReviewed, "non-reviewed records"
	})
}

func (m *ReviewHandler) exportSubset(c echo.Context, filename string, subset func([]*model.Record, *model.ReviewSet) ([]*model.Record, string)) error {
	s := m.session(c)
	if !s.HasTable() {
		return renderPopupOrJson(c, http.StatusBadRequest, "No dataset loaded")
	}

	spec := parseFilterSpec(c)
	filtered := dataset.Filter(s.Table, s.Reviews, spec)

	records, label := subset(filtered, s.Reviews)
	if len(records) == 0 {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("No %s to export", label))
	}

	data, err := dataset.Export(s.Table, records, s.Reviews)
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to export %s: %v", label, err))
	}

	m.logger.Info("Dataset exported", "session", s.RID, "file", filename, "records", len(records))

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Blob(http.StatusOK, "text/csv", data)
}
