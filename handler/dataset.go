package handler

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"reviewer/dataset"
	"reviewer/helper"
	"reviewer/view/screens"

	"github.com/labstack/echo/v4"
)

// =======API Handlers=======

// UploadDataset accepts a CSV upload, parses it and loads it into the
// current session. A parse failure leaves any previously loaded table
// untouched.
func (m *ReviewHandler) UploadDataset(c echo.Context) error {
	fileHeader, err := c.FormFile("dataset_file")
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, "No file uploaded")
	}

	filename := filepath.Base(fileHeader.Filename)
	if !helper.IsCSV(filename) {
		return renderPopupOrJson(c, http.StatusBadRequest, "Only CSV files are supported")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to open file %s: %v", filename, err))
	}
	defer src.Close()

	data := &bytes.Buffer{}
	if _, err := data.ReadFrom(src); err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to read file %s: %v", filename, err))
	}

	table, warnings, err := dataset.Parse(bytes.NewReader(data.Bytes()))
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Error loading file: %v", err))
	}

	// Keep the original upload so it can be re-loaded later.
	if err := m.filesystem.Write(filename, bytes.NewReader(data.Bytes()), int64(data.Len())); err != nil {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Failed to save file %s: %v", filename, err))
	}

	s := m.session(c)
	s.LoadTable(table, filename, warnings)
	m.logger.Info("Dataset loaded", "session", s.RID, "file", filename, "records", len(table.Records), "warnings", len(warnings))

	c.Response().Header().Add("HX-Redirect", "/")

	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("Loaded %d records (%d columns) from %s", len(table.Records), len(table.Columns), filename))
}

// LoadDataset loads a previously stored CSV into the current session.
func (m *ReviewHandler) LoadDataset(c echo.Context) error {
	filename := c.Param("filename")
	if filename == "" {
		return renderPopupOrJson(c, http.StatusBadRequest, "File name is required")
	}

	src, err := m.filesystem.Open(filename)
	if err != nil {
		return renderPopupOrJson(c, http.StatusNotFound, fmt.Sprintf("Failed to open file %s: %v", filename, err))
	}
	defer src.Close()

	table, warnings, err := dataset.Parse(src)
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Error loading file: %v", err))
	}

	s := m.session(c)
	s.LoadTable(table, filename, warnings)
	m.logger.Info("Dataset loaded", "session", s.RID, "file", filename, "records", len(table.Records), "warnings", len(warnings))

	c.Response().Header().Add("HX-Redirect", "/")

	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("Loaded %d records (%d columns) from %s", len(table.Records), len(table.Columns), filename))
}

// DeleteDatasets deletes multiple stored files
func (m *ReviewHandler) DeleteDatasets(c echo.Context) error {
	params, err := c.FormParams()
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}
	names := params["name"]
	if len(names) == 0 {
		names = c.QueryParams()["name"]
	}
	if len(names) == 0 {
		return renderPopupOrJson(c, http.StatusBadRequest, "No file names provided")
	}

	var deletedFiles []string
	var errors []string

	for _, name := range names {
		err := m.filesystem.Delete(name)
		if err != nil {
			errors = append(errors, fmt.Sprintf("%s: %v", name, err))
		} else {
			deletedFiles = append(deletedFiles, name)
		}
	}

	c.Response().Header().Add("HX-Trigger-After-Settle", "reloadDatasets")

	if len(errors) > 0 {
		return renderPopupOrJson(c, http.StatusInternalServerError, fmt.Sprintf("Deleted %d file(s), but %d failed: %v", len(deletedFiles), len(errors), errors))
	}

	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("%d file(s) deleted successfully", len(deletedFiles)))
}

// GetStats returns the summary statistics of the loaded table as JSON.
func (m *ReviewHandler) GetStats(c echo.Context) error {
	s := m.session(c)
	if !s.HasTable() {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "No dataset loaded"})
	}

	return c.JSON(http.StatusOK, dataset.Summarize(s.Table, s.Reviews))
}

// =======View Handlers=======

// DatasetsView renders the stored datasets list view
func (m *ReviewHandler) DatasetsView(c echo.Context) error {
	search := c.QueryParam("search")

	files, err := m.filesystem.ListFiles()
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": fmt.Sprintf("Failed to list files: %v", err),
		})
	}

	if search != "" {
		filtered := files[:0]
		for _, file := range files {
			if strings.Contains(file.Name, search) {
				filtered = append(filtered, file)
			}
		}
		files = filtered
	}

	c.Response().Header().Add("HX-Push-Url", fmt.Sprintf("/datasets?search=%s", search))
	c.Response().Header().Add("HX-Retarget", "#body")

	return render(c, screens.Datasets(files, search))
}

// =======Popup Handlers=======

// UploadDatasetPopupView renders the upload dialog
func (m *ReviewHandler) UploadDatasetPopupView(c echo.Context) error {
	return renderPopup(c, screens.UploadDatasetPopup())
}

// DeleteDatasetPopupView renders the delete confirmation dialog
func (m *ReviewHandler) DeleteDatasetPopupView(c echo.Context) error {
	names := c.QueryParams()["name"]
	if len(names) == 0 {
		return renderPopupOrJson(c, http.StatusBadRequest, "No file names provided")
	}

	return renderPopup(c, screens.DeleteDatasetPopup(names))
}
