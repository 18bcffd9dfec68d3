package dataset

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"reviewer/model"
)

// ReviewedStatusColumn is appended to every export, computed per row from
// the live ReviewSet at export time.
const ReviewedStatusColumn = "reviewed_status"

// Export serializes a table subset back to CSV: the input's columns plus
// the appended reviewed_status boolean. No index column is emitted.
func Export(t *model.Table, records []*model.Record, reviews *model.ReviewSet) ([]byte, error) {
	if reviews == nil {
		reviews = model.NewReviewSet()
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	header := make([]string, 0, len(t.Columns)+1)
	header = append(header, t.Columns...)
	header = append(header, ReviewedStatusColumn)
	if err := writer.Write(header); err != nil {
		return nil, fmt.Errorf("writing export header: %w", err)
	}

	row := make([]string, len(t.Columns)+1)
	for _, r := range records {
		copy(row, r.Cells)
		row[len(t.Columns)] = strconv.FormatBool(reviews.Contains(r.ID))
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("writing export row %d: %w", r.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("flushing export: %w", err)
	}
	return buf.Bytes(), nil
}

// Partition splits a filtered view by ReviewSet membership. The two
// halves are disjoint and together equal the input, in original order.
func Partition(records []*model.Record, reviews *model.ReviewSet) (reviewed []*model.Record, notReviewed []*model.Record) {
	if reviews == nil {
		reviews = model.NewReviewSet()
	}
	reviewed = []*model.Record{}
	notReviewed = []*model.Record{}
	for _, r := range records {
		if reviews.Contains(r.ID) {
			reviewed = append(reviewed, r)
		} else {
			notReviewed = append(notReviewed, r)
		}
	}
	return reviewed, notReviewed
}
