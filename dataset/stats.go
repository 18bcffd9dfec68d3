package dataset

import "reviewer/model"

// Stats summarizes a loaded table against the current review state.
type Stats struct {
	TotalRecords     int     `json:"total_records"`
	ReviewedRecords  int     `json:"reviewed_records"`
	PendingRecords   int     `json:"pending_records"`
	ReviewPercentage float64 `json:"review_percentage"`
	Languages        int     `json:"languages"`
	Qualifications   int     `json:"qualifications"`
	HighScores       int     `json:"high_scores"`
	MediumScores     int     `json:"medium_scores"`
	LowScores        int     `json:"low_scores"`
	MinScore         float64 `json:"min_score"`
	MaxScore         float64 `json:"max_score"`
	AvgScore         float64 `json:"avg_score"`
	HasScores        bool    `json:"has_scores"`
}

// Summarize computes review progress, unique language/qualification counts
// and the score distribution (high >0.8, medium >0.5..0.8, low <=0.5).
// Records with a missing score stay out of the score stats.
func Summarize(t *model.Table, reviews *model.ReviewSet) Stats {
	if reviews == nil {
		reviews = model.NewReviewSet()
	}

	stats := Stats{
		TotalRecords:   len(t.Records),
		Languages:      len(t.UniqueValues("language")),
		Qualifications: len(t.UniqueValues("qualification_name")),
	}

	for _, r := range t.Records {
		if reviews.Contains(r.ID) {
			stats.ReviewedRecords++
		}
	}
	stats.PendingRecords = stats.TotalRecords - stats.ReviewedRecords
	if stats.TotalRecords > 0 {
		stats.ReviewPercentage = float64(stats.ReviewedRecords) / float64(stats.TotalRecords) * 100
	}

	sum := 0.0
	count := 0
	for _, r := range t.Records {
		if !r.HasScore {
			continue
		}
		switch {
		case r.Score > 0.8:
			stats.HighScores++
		case r.Score > 0.5:
			stats.MediumScores++
		default:
			stats.LowScores++
		}
		if count == 0 {
			stats.MinScore, stats.MaxScore = r.Score, r.Score
		} else {
			if r.Score < stats.MinScore {
				stats.MinScore = r.Score
			}
			if r.Score > stats.MaxScore {
				stats.MaxScore = r.Score
			}
		}
		sum += r.Score
		count++
	}
	if count > 0 {
		stats.AvgScore = sum / float64(count)
		stats.HasScores = true
	}

	return stats
}

// HighScoreCount counts records above the 0.8 threshold in a filtered
// view.
func HighScoreCount(records []*model.Record) int {
	count := 0
	for _, r := range records {
		if r.HasScore && r.Score > 0.8 {
			count++
		}
	}
	return count
}
