package dataset

import (
	"bytes"
	"encoding/csv"
	"testing"

	"reviewer/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExport(t *testing.T) {
	table := testTable(t)

	t.Run("Export appends reviewed_status column", func(t *testing.T) {
		reviews := model.NewReviewSet()
		reviews.Mark(0)
		reviews.Mark(2)

		data, err := Export(table, table.Records, reviews)
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 5)

		assert.Equal(t, append(append([]string{}, table.Columns...), ReviewedStatusColumn), rows[0])
		assert.Equal(t, "true", rows[1][len(rows[1])-1])
		assert.Equal(t, "false", rows[2][len(rows[2])-1])
		assert.Equal(t, "true", rows[3][len(rows[3])-1])
		assert.Equal(t, "false", rows[4][len(rows[4])-1])

		// Original cells survive untouched
		assert.Equal(t, "EN", rows[1][0])
		assert.Equal(t, "What is your age?", rows[1][1])
	})

	t.Run("Export of a subset keeps only subset rows", func(t *testing.T) {
		reviews := model.NewReviewSet()
		reviews.Mark(1)

		reviewed, _ := Partition(table.Records, reviews)
		data, err := Export(table, reviewed, reviews)
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "DE", rows[1][0])
		assert.Equal(t, "true", rows[1][len(rows[1])-1])
	})

	t.Run("Export with empty subset yields header only", func(t *testing.T) {
		data, err := Export(table, []*model.Record{}, nil)
		require.NoError(t, err)

		rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})
}

func TestPartition(t *testing.T) {
	table := testTable(t)
	reviews := model.NewReviewSet()
	reviews.Mark(0)
	reviews.Mark(3)

	reviewed, notReviewed := Partition(table.Records, reviews)

	require.Len(t, reviewed, 2)
	require.Len(t, notReviewed, 2)
	assert.Equal(t, 0, reviewed[0].ID)
	assert.Equal(t, 3, reviewed[1].ID)
	assert.Equal(t, 1, notReviewed[0].ID)
	assert.Equal(t, 2, notReviewed[1].ID)
	assert.Equal(t, len(table.Records), len(reviewed)+len(notReviewed))
}
