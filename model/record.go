package model

// ScoreColumn is the CSV column coerced to a numeric score on load.
const ScoreColumn = "score"

// FallbackScore is substituted for every record when the uploaded CSV has
// no score column at all, so numeric filtering keeps working.
const FallbackScore = 0.5

// Record is one row of the uploaded table. Cells are kept verbatim in
// upload column order; the coerced score lives next to them. The ID is
// assigned once at parse time and stays stable for the lifetime of the
// load, it is not a live slice position.
type Record struct {
	ID       int      `json:"id"`
	Cells    []string `json:"cells"`
	Score    float64  `json:"score"`
	HasScore bool     `json:"has_score"`
}

// Table holds one loaded CSV: ordered columns plus records. ScoreIndex is
// -1 when the upload carried no score column (records then hold the
// fallback score).
type Table struct {
	Columns    []string  `json:"columns"`
	ScoreIndex int       `json:"score_index"`
	Records    []*Record `json:"records"`
}

// ColumnIndex returns the index of the named column or -1.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Value returns the raw cell of a record in the named column, or fallback
// if the column does not exist.
func (t *Table) Value(r *Record, column string, fallback string) string {
	i := t.ColumnIndex(column)
	if i < 0 || i >= len(r.Cells) {
		return fallback
	}
	return r.Cells[i]
}

// UniqueValues lists the distinct values of a column in first-seen order.
// An absent column yields an empty list.
func (t *Table) UniqueValues(column string) []string {
	i := t.ColumnIndex(column)
	if i < 0 {
		return []string{}
	}
	seen := map[string]bool{}
	values := []string{}
	for _, r := range t.Records {
		if i >= len(r.Cells) {
			continue
		}
		v := r.Cells[i]
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// ScoreBounds returns the min and max over all non-missing scores. ok is
// false when no record has a score.
func (t *Table) ScoreBounds() (min float64, max float64, ok bool) {
	for _, r := range t.Records {
		if !r.HasScore {
			continue
		}
		if !ok {
			min, max, ok = r.Score, r.Score, true
			continue
		}
		if r.Score < min {
			min = r.Score
		}
		if r.Score > max {
			max = r.Score
		}
	}
	return min, max, ok
}
