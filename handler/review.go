package handler

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"reviewer/dataset"
	"reviewer/model"
	"reviewer/session"
	"reviewer/view/screens"

	"github.com/labstack/echo/v4"
)

// mappedColumns are pulled into dedicated review table columns, every
// other upload column lands in the extras section.
var mappedColumns = map[string]bool{
	"language":                  true,
	"score":                     true,
	"qualification_name":        true,
	"client_qualification_name": true,
	"questions":                 true,
	"client_questions":          true,
	"client_answer_text":        true,
	"qualificationAnswerDesc":   true,
}

// =======View Handlers=======

// HomeView renders the welcome screen, or the review screen when the
// session already has a table loaded.
func (m *ReviewHandler) HomeView(c echo.Context) error {
	s := m.session(c)
	if s.HasTable() {
		return m.ReviewView(c)
	}
	return render(c, screens.Home())
}

// ReviewView renders the review table for the current filter parameters.
func (m *ReviewHandler) ReviewView(c echo.Context) error {
	s := m.session(c)
	if !s.HasTable() {
		return render(c, screens.Home())
	}

	spec := parseFilterSpec(c)
	page, size := parsePaging(c)

	filtered := dataset.Filter(s.Table, s.Reviews, spec)
	paged := dataset.Paginate(filtered, page, size)

	view := m.buildReviewView(s, spec, filtered, paged)

	c.Response().Header().Add("HX-Push-Url", fmt.Sprintf("/review?%s", view.Query))
	c.Response().Header().Add("HX-Retarget", "#body")

	return render(c, screens.Review(view))
}

// =======API Handlers=======

// MarkReviewed marks the submitted record IDs as reviewed.
func (m *ReviewHandler) MarkReviewed(c echo.Context) error {
	return m.updateReviews(c, true)
}

// UnmarkReviewed removes the submitted record IDs from the reviewed set.
func (m *ReviewHandler) UnmarkReviewed(c echo.Context) error {
	return m.updateReviews(c, false)
}

func (m *ReviewHandler) updateReviews(c echo.Context, reviewed bool) error {
	s := m.session(c)
	if !s.HasTable() {
		return renderPopupOrJson(c, http.StatusBadRequest, "No dataset loaded")
	}

	params, err := c.FormParams()
	if err != nil {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
	}
	values := params["id"]
	if len(values) == 0 {
		return renderPopupOrJson(c, http.StatusBadRequest, "No items selected")
	}

	var errors []string
	updated := 0
	for _, value := range values {
		id, err := strconv.Atoi(value)
		if err != nil || id < 0 || id >= len(s.Table.Records) {
			errors = append(errors, value)
			continue
		}
		if reviewed {
			s.Reviews.Mark(id)
		} else {
			s.Reviews.Unmark(id)
		}
		updated++
	}

	c.Response().Header().Add("HX-Trigger-After-Settle", "reloadReview")

	if len(errors) > 0 {
		return renderPopupOrJson(c, http.StatusBadRequest, fmt.Sprintf("Updated %d items, but %d invalid ids were skipped: %s", updated, len(errors), strings.Join(errors, ", ")))
	}
	if reviewed {
		return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("Marked %d items as reviewed!", updated))
	}
	return renderPopupOrJson(c, http.StatusOK, fmt.Sprintf("Unmarked %d items!", updated))
}

// ClearReviews resets every review mark in the session.
func (m *ReviewHandler) ClearReviews(c echo.Context) error {
	s := m.session(c)
	if !s.HasTable() {
		return renderPopupOrJson(c, http.StatusBadRequest, "No dataset loaded")
	}

	s.Reviews.Clear()

	c.Response().Header().Add("HX-Trigger-After-Settle", "reloadReview")

	return renderPopupOrJson(c, http.StatusOK, "All review statuses cleared!")
}

// =======Helpers=======

// parseFilterSpec reads the filter query parameters. Unknown or malformed
// values fall back to the unconstrained default instead of erroring.
func parseFilterSpec(c echo.Context) model.FilterSpec {
	spec := model.FilterSpec{
		Languages:      dropEmpty(c.QueryParams()["language"]),
		Qualifications: dropEmpty(c.QueryParams()["qualification"]),
		Status:         model.ParseReviewStatus(c.QueryParam("status")),
		Search:         strings.TrimSpace(c.QueryParam("search")),
	}

	if value := c.QueryParam("scoreMin"); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			spec.ScoreMin = &f
		}
	}
	if value := c.QueryParam("scoreMax"); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			spec.ScoreMax = &f
		}
	}
	if spec.ScoreMin != nil && spec.ScoreMax != nil && *spec.ScoreMin > *spec.ScoreMax {
		spec.ScoreMin, spec.ScoreMax = spec.ScoreMax, spec.ScoreMin
	}

	return spec
}

func parsePaging(c echo.Context) (page int, size int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	size, _ = strconv.Atoi(c.QueryParam("size"))
	size = dataset.ClampPageSize(size)
	return page, size
}

func dropEmpty(values []string) []string {
	result := []string{}
	for _, v := range values {
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}

// filterQuery serializes the active filter and paging back into a query
// string, so refresh and export links reproduce the same view.
func filterQuery(spec model.FilterSpec, page dataset.Page) string {
	values := url.Values{}
	for _, v := range spec.Languages {
		values.Add("language", v)
	}
	for _, v := range spec.Qualifications {
		values.Add("qualification", v)
	}
	if spec.ScoreMin != nil {
		values.Set("scoreMin", strconv.FormatFloat(*spec.ScoreMin, 'f', -1, 64))
	}
	if spec.ScoreMax != nil {
		values.Set("scoreMax", strconv.FormatFloat(*spec.ScoreMax, 'f', -1, 64))
	}
	if spec.Status != "" && spec.Status != model.ReviewStatusAll {
		values.Set("status", string(spec.Status))
	}
	if spec.Search != "" {
		values.Set("search", spec.Search)
	}
	values.Set("page", strconv.Itoa(page.Number))
	values.Set("size", strconv.Itoa(page.Size))
	return values.Encode()
}

func (m *ReviewHandler) buildReviewView(s *session.Session, spec model.FilterSpec, filtered []*model.Record, page dataset.Page) *model.ReviewView {
	t := s.Table

	view := &model.ReviewView{
		Source:         s.Source,
		Warnings:       s.Warnings,
		Spec:           spec,
		Languages:      t.UniqueValues("language"),
		Qualifications: t.UniqueValues("qualification_name"),
		HasScores:      t.ScoreIndex >= 0,
		TotalRecords:   len(t.Records),
		FilteredCount:  len(filtered),
		ReviewedCount:  s.Reviews.Len(),
		HighScoreCount: dataset.HighScoreCount(filtered),
		Page:           page.Number,
		PageSize:       page.Size,
		TotalPages:     page.TotalPages,
		Start:          page.Start,
		End:            page.End,
		Query:          filterQuery(spec, page),
	}

	for _, column := range t.Columns {
		if !mappedColumns[column] {
			view.ExtraColumns = append(view.ExtraColumns, column)
		}
	}

	view.ScoreFloor, view.ScoreCeil = 0, 1
	if min, max, ok := t.ScoreBounds(); ok {
		view.ScoreFloor, view.ScoreCeil = min, max
		if view.ScoreCeil <= view.ScoreFloor {
			view.ScoreCeil = view.ScoreFloor + 0.01
		}
	}

	reviewed, notReviewed := dataset.Partition(filtered, s.Reviews)
	view.CanExportReviewed = len(reviewed) > 0
	view.CanExportNotReviewed = len(notReviewed) > 0

	view.Rows = make([]model.ReviewRow, 0, len(page.Records))
	for i, r := range page.Records {
		row := model.ReviewRow{
			ID:                  r.ID,
			Number:              page.Start + i,
			Reviewed:            s.Reviews.Contains(r.ID),
			ScoreText:           model.FormatScore(r),
			ScoreClass:          model.ScoreClass(r),
			Language:            t.Value(r, "language", ""),
			Qualification:       model.Truncate(t.Value(r, "qualification_name", ""), 60),
			ClientQualification: model.Truncate(t.Value(r, "client_qualification_name", ""), 60),
			Question:            model.Truncate(t.Value(r, "questions", ""), 80),
			ClientQuestion:      model.Truncate(t.Value(r, "client_questions", ""), 80),
			Answer:              model.Truncate(t.Value(r, "qualificationAnswerDesc", ""), 60),
			ClientAnswer:        model.Truncate(t.Value(r, "client_answer_text", ""), 60),
		}
		for _, column := range view.ExtraColumns {
			row.Extras = append(row.Extras, model.Truncate(t.Value(r, column, ""), 40))
		}
		view.Rows = append(view.Rows, row)
	}

	return view
}
