package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postForm(e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestReviewView(t *testing.T) {
	h, e := newTestHandler()
	loadTestCSV(t, h, mappingCSV(120))

	t.Run("ReviewView unfiltered shows the first page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/review", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.ReviewView(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Showing items 1-25 of 120")
	})

	t.Run("ReviewView filtered by language", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/review?language=EN", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.ReviewView(c)
		require.NoError(t, err)

		assert.Contains(t, rec.Body.String(), "Showing items 1-25 of 40")
	})

	t.Run("ReviewView clamps out-of-range page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/review?page=999&size=50", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.ReviewView(c)
		require.NoError(t, err)

		assert.Contains(t, rec.Body.String(), "Showing items 101-120 of 120")
	})

	t.Run("ReviewView swaps inverted score limits", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/review?scoreMin=0.9&scoreMax=0.1", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.ReviewView(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, rec.Body.String(), "No data matches")
	})
}

func TestMarkAndFilterReviewed(t *testing.T) {
	h, e := newTestHandler()
	loadTestCSV(t, h, mappingCSV(120))

	c, rec := postForm(e, "/api/review/markReviewed", url.Values{"id": []string{"0", "5"}})
	err := h.MarkReviewed(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Marked 2 items as reviewed!")
	assert.Equal(t, "reloadReview", rec.Header().Get("HX-Trigger-After-Settle"))

	t.Run("Reviewed filter shows exactly the marked rows", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/review?status=reviewed", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := h.ReviewView(c)
		require.NoError(t, err)

		assert.Contains(t, rec.Body.String(), "Showing items 1-2 of 2")
		assert.Contains(t, rec.Body.String(), "Question 0")
		assert.Contains(t, rec.Body.String(), "Question 5")
	})

	t.Run("Marking is idempotent", func(t *testing.T) {
		c, rec := postForm(e, "/api/review/markReviewed", url.Values{"id": []string{"0"}})
		err := h.MarkReviewed(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		s := h.session(c)
		assert.Equal(t, 2, s.Reviews.Len())
	})

	t.Run("Unmark removes a row from the reviewed set", func(t *testing.T) {
		c, rec := postForm(e, "/api/review/unmarkReviewed", url.Values{"id": []string{"5"}})
		err := h.UnmarkReviewed(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		s := h.session(c)
		assert.False(t, s.Reviews.Contains(5))
		assert.True(t, s.Reviews.Contains(0))
	})
}

func TestMarkReviewedErrors(t *testing.T) {
	h, e := newTestHandler()

	t.Run("MarkReviewed without a dataset", func(t *testing.T) {
		c, rec := postForm(e, "/api/review/markReviewed", url.Values{"id": []string{"0"}})
		err := h.MarkReviewed(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No dataset loaded")
	})

	loadTestCSV(t, h, mappingCSV(10))

	t.Run("MarkReviewed without selected items", func(t *testing.T) {
		c, rec := postForm(e, "/api/review/markReviewed", url.Values{})
		err := h.MarkReviewed(c)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "No items selected")
	})

	t.Run("MarkReviewed skips invalid ids but applies valid ones", func(t *testing.T) {
		c, rec := postForm(e, "/api/review/markReviewed", url.Values{"id": []string{"3", "abc", "999"}})
		err := h.MarkReviewed(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "invalid ids were skipped")

		s := h.session(c)
		assert.True(t, s.Reviews.Contains(3))
		assert.Equal(t, 1, s.Reviews.Len())
	})
}

func TestClearReviews(t *testing.T) {
	h, e := newTestHandler()
	s := loadTestCSV(t, h, mappingCSV(10))
	s.Reviews.Mark(1)
	s.Reviews.Mark(2)

	c, rec := postForm(e, "/api/review/clearReviews", url.Values{})
	err := h.ClearReviews(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "All review statuses cleared!")
	assert.Equal(t, 0, s.Reviews.Len())
}

func TestScorelessDataset(t *testing.T) {
	h, e := newTestHandler()
	loadTestCSV(t, h, "language,questions,qualification_name,client_answer_text\nEN,Q1,Qual,A1\nDE,Q2,Qual,A2\n")

	req := httptest.NewRequest(http.MethodGet, "/review", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ReviewView(c)
	require.NoError(t, err)

	body := rec.Body.String()
	assert.Contains(t, body, "No score column found, using default score 0.5 for all records.")
	// Every record carries the fallback, rendered with full precision
	assert.Contains(t, body, "0.500")
}
