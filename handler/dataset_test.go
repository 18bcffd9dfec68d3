package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipartUpload(t *testing.T, e *echo.Echo, filename string, content string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("dataset_file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/dataset/uploadDataset", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestUploadDataset(t *testing.T) {
	h, e := newTestHandler()

	t.Run("UploadDataset with valid CSV", func(t *testing.T) {
		c, rec := multipartUpload(t, e, "mappings.csv", mappingCSV(5))

		err := h.UploadDataset(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Loaded 5 records")
		assert.Equal(t, "/", rec.Header().Get("HX-Redirect"))

		s := h.sessions.GetOrCreate(uuid.Nil)
		require.True(t, s.HasTable())
		assert.Equal(t, "mappings.csv", s.Source)
		assert.Len(t, s.Table.Records, 5)

		// The upload is also kept in storage
		files, err := h.filesystem.ListFiles()
		require.NoError(t, err)
		require.Len(t, files, 1)
		assert.Equal(t, "mappings.csv", files[0].Name)
	})

	t.Run("UploadDataset rejects non-CSV files", func(t *testing.T) {
		c, rec := multipartUpload(t, e, "data.json", "{}")

		err := h.UploadDataset(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Only CSV files are supported")
	})

	t.Run("UploadDataset rejects empty CSV", func(t *testing.T) {
		c, rec := multipartUpload(t, e, "empty.csv", "")

		err := h.UploadDataset(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Error loading file")
	})

	t.Run("Failed upload keeps the previous table", func(t *testing.T) {
		s := h.sessions.GetOrCreate(uuid.Nil)
		require.True(t, s.HasTable())
		before := len(s.Table.Records)

		c, _ := multipartUpload(t, e, "broken.csv", "")
		err := h.UploadDataset(c)
		require.NoError(t, err)

		assert.Len(t, s.Table.Records, before)
		assert.Equal(t, "mappings.csv", s.Source)
	})

	t.Run("UploadDataset without file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/dataset/uploadDataset", strings.NewReader(""))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.UploadDataset(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No file uploaded")
	})
}

func TestLoadDataset(t *testing.T) {
	h, e := newTestHandler()

	content := mappingCSV(3)
	require.NoError(t, h.filesystem.Write("stored.csv", strings.NewReader(content), int64(len(content))))

	t.Run("LoadDataset from storage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/dataset/loadDataset/stored.csv", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("filename")
		c.SetParamValues("stored.csv")

		err := h.LoadDataset(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Loaded 3 records")

		s := h.sessions.GetOrCreate(uuid.Nil)
		assert.Equal(t, "stored.csv", s.Source)
	})

	t.Run("LoadDataset with unknown file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/dataset/loadDataset/missing.csv", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("filename")
		c.SetParamValues("missing.csv")

		err := h.LoadDataset(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteDatasets(t *testing.T) {
	h, e := newTestHandler()

	for _, name := range []string{"a.csv", "b.csv"} {
		require.NoError(t, h.filesystem.Write(name, strings.NewReader("language\nEN\n"), 12))
	}

	t.Run("DeleteDatasets removes the named files", func(t *testing.T) {
		c, rec := postForm(e, "/api/dataset/deleteDatasets", url.Values{"name": []string{"a.csv", "b.csv"}})

		err := h.DeleteDatasets(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "2 file(s) deleted successfully")

		files, err := h.filesystem.ListFiles()
		require.NoError(t, err)
		assert.Empty(t, files)
	})

	t.Run("DeleteDatasets without names", func(t *testing.T) {
		c, rec := postForm(e, "/api/dataset/deleteDatasets", url.Values{})

		err := h.DeleteDatasets(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No file names provided")
	})

	t.Run("DeleteDatasets reports partial failures", func(t *testing.T) {
		require.NoError(t, h.filesystem.Write("c.csv", strings.NewReader("language\nEN\n"), 12))

		c, rec := postForm(e, "/api/dataset/deleteDatasets", url.Values{"name": []string{"c.csv", "missing.csv"}})

		err := h.DeleteDatasets(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "Deleted 1 file(s), but 1 failed")
	})
}

func TestGetStats(t *testing.T) {
	h, e := newTestHandler()

	t.Run("GetStats without a dataset", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/dataset/getStats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.GetStats(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("GetStats with a dataset", func(t *testing.T) {
		s := loadTestCSV(t, h, mappingCSV(10))
		s.Reviews.Mark(0)

		req := httptest.NewRequest(http.MethodGet, "/api/dataset/getStats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.GetStats(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var stats map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
		assert.Equal(t, float64(10), stats["total_records"])
		assert.Equal(t, float64(1), stats["reviewed_records"])
		assert.Equal(t, float64(9), stats["pending_records"])
	})
}

func TestDatasetsView(t *testing.T) {
	h, e := newTestHandler()

	require.NoError(t, h.filesystem.Write("alpha.csv", strings.NewReader("language\nEN\n"), 12))
	require.NoError(t, h.filesystem.Write("beta.csv", strings.NewReader("language\nDE\n"), 12))

	t.Run("DatasetsView lists stored files", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/datasets", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.DatasetsView(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "alpha.csv")
		assert.Contains(t, rec.Body.String(), "beta.csv")
	})

	t.Run("DatasetsView filters by search", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/datasets?search=alpha", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.DatasetsView(c)
		require.NoError(t, err)

		assert.Contains(t, rec.Body.String(), "alpha.csv")
		assert.NotContains(t, rec.Body.String(), "beta.csv")
	})
}
