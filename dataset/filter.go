package dataset

import (
	"strings"

	"reviewer/model"
)

// Filter produces the filtered view: the records satisfying the
// conjunction of all active FilterSpec predicates, in original order.
// Empty or default dimensions act as "no constraint". The result is a
// pure function of (table, reviews, spec); applying the same spec twice
// yields the same view.
func Filter(t *model.Table, reviews *model.ReviewSet, spec model.FilterSpec) []*model.Record {
	if reviews == nil {
		reviews = model.NewReviewSet()
	}

	languageIdx := t.ColumnIndex("language")
	qualificationIdx := t.ColumnIndex("qualification_name")
	search := strings.ToLower(spec.Search)

	filtered := []*model.Record{}
	for _, r := range t.Records {
		if len(spec.Languages) > 0 && !cellIn(r, languageIdx, spec.Languages) {
			continue
		}
		if len(spec.Qualifications) > 0 && !cellIn(r, qualificationIdx, spec.Qualifications) {
			continue
		}
		if !scoreInRange(r, spec.ScoreMin, spec.ScoreMax) {
			continue
		}
		switch spec.Status {
		case model.ReviewStatusReviewed:
			if !reviews.Contains(r.ID) {
				continue
			}
		case model.ReviewStatusNotReviewed:
			if reviews.Contains(r.ID) {
				continue
			}
		}
		if search != "" && !matchesSearch(r, search) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}

func cellIn(r *model.Record, idx int, values []string) bool {
	if idx < 0 || idx >= len(r.Cells) {
		return false
	}
	for _, v := range values {
		if r.Cells[idx] == v {
			return true
		}
	}
	return false
}

// scoreInRange is inclusive on both ends. With no limits set the score is
// unconstrained and records with a missing score pass too; once either
// limit is active, missing scores are excluded.
func scoreInRange(r *model.Record, min *float64, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if !r.HasScore {
		return false
	}
	if min != nil && r.Score < *min {
		return false
	}
	if max != nil && r.Score > *max {
		return false
	}
	return true
}

// matchesSearch does a case-insensitive substring match against every
// cell; a record matches if any column matches.
func matchesSearch(r *model.Record, loweredTerm string) bool {
	for _, cell := range r.Cells {
		if strings.Contains(strings.ToLower(cell), loweredTerm) {
			return true
		}
	}
	return false
}
