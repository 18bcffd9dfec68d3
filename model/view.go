package model

import (
	"fmt"
	"slices"
)

// ReviewRow is one rendered row of the review table. The mapped columns
// are pulled out for side-by-side display, everything else lands in
// Extras.
type ReviewRow struct {
	ID                  int
	Number              int
	Reviewed            bool
	ScoreText           string
	ScoreClass          string
	Language            string
	Qualification       string
	ClientQualification string
	Question            string
	ClientQuestion      string
	Answer              string
	ClientAnswer        string
	// Extras aligns with ReviewView.ExtraColumns.
	Extras []string
}

// ReviewView is the full view model for the review screen.
type ReviewView struct {
	Source   string
	Warnings []string

	Spec           FilterSpec
	Languages      []string
	Qualifications []string
	ExtraColumns   []string
	ScoreFloor     float64
	ScoreCeil      float64
	HasScores      bool

	TotalRecords   int
	FilteredCount  int
	ReviewedCount  int
	HighScoreCount int

	Rows       []ReviewRow
	Page       int
	PageSize   int
	TotalPages int
	Start      int
	End        int

	CanExportReviewed    bool
	CanExportNotReviewed bool

	// Query is the current filter/pagination query string, reused for
	// refresh and export links.
	Query string
}

func (v *ReviewView) LanguageSelected(value string) bool {
	return slices.Contains(v.Spec.Languages, value)
}

func (v *ReviewView) QualificationSelected(value string) bool {
	return slices.Contains(v.Spec.Qualifications, value)
}

// Truncate shortens a value for table display, matching the original
// reviewer's ellipsis behavior.
func Truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

// FormatScore renders a record score for display, N/A for missing.
func FormatScore(r *Record) string {
	if !r.HasScore {
		return "N/A"
	}
	return fmt.Sprintf("%.3f", r.Score)
}

// ScoreClass picks the style class for a score cell: green above 0.8,
// yellow above 0.5, red otherwise, neutral for missing.
func ScoreClass(r *Record) string {
	if !r.HasScore {
		return "score-missing"
	}
	if r.Score > 0.8 {
		return "score-high"
	}
	if r.Score > 0.5 {
		return "score-medium"
	}
	return "score-low"
}
