package model

// ReviewStatus selects which side of the ReviewSet partition a filtered
// view shows.
type ReviewStatus string

const (
	ReviewStatusAll         ReviewStatus = "all"
	ReviewStatusReviewed    ReviewStatus = "reviewed"
	ReviewStatusNotReviewed ReviewStatus = "not_reviewed"
)

// ParseReviewStatus maps a query parameter to a ReviewStatus, defaulting
// to "all" for anything unknown.
func ParseReviewStatus(value string) ReviewStatus {
	switch ReviewStatus(value) {
	case ReviewStatusReviewed:
		return ReviewStatusReviewed
	case ReviewStatusNotReviewed:
		return ReviewStatusNotReviewed
	default:
		return ReviewStatusAll
	}
}

// FilterSpec is the combination of active filter parameters producing one
// filtered view. Zero values mean "no constraint": empty selections match
// everything, nil score limits leave the score unconstrained.
type FilterSpec struct {
	Languages      []string     `json:"languages"`
	Qualifications []string     `json:"qualifications"`
	ScoreMin       *float64     `json:"score_min"`
	ScoreMax       *float64     `json:"score_max"`
	Status         ReviewStatus `json:"status"`
	Search         string       `json:"search"`
}

// IsDefault reports whether every dimension is at its "no constraint"
// default.
func (f FilterSpec) IsDefault() bool {
	return len(f.Languages) == 0 &&
		len(f.Qualifications) == 0 &&
		f.ScoreMin == nil && f.ScoreMax == nil &&
		(f.Status == "" || f.Status == ReviewStatusAll) &&
		f.Search == ""
}

// PageSizes is the fixed page size menu.
var PageSizes = []int{10, 25, 50, 100}

// DefaultPageSize is used when no (or an unknown) size is requested.
const DefaultPageSize = 25
