// Package dataset implements the table operations behind the reviewer:
// CSV loading with advisory validation, conjunctive filtering, pagination,
// export and summary statistics. All operations are pure over the loaded
// table; session state stays in the session package.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"reviewer/model"
)

// RequiredColumns are reported (not enforced) when absent from an upload.
var RequiredColumns = []string{"language", "questions", "qualification_name", "client_answer_text", "score"}

// OptionalColumns are the remaining well-known mapping columns; absence is
// only mentioned in the diagnostics.
var OptionalColumns = []string{
	"lang_id", "language_id", "client_questions", "qualification_id",
	"client_qualification_name", "client_qualification_id", "client_answer_id",
	"preCode", "qualificationAnswerDesc", "qualificationAnswerId",
}

// ParseError marks input that could not be parsed at all. Callers keep
// their previously loaded table untouched on a ParseError.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing CSV: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads CSV bytes into a Table and returns advisory warnings.
// Warnings never block loading; only unparseable input errors out. Rows
// shorter than the header are padded, longer rows truncated. Score cells
// that cannot be coerced become missing; an entirely absent score column
// substitutes the fallback constant for every record.
func Parse(r io.Reader) (*model.Table, []string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil, &ParseError{Err: errors.New("empty CSV input")}
		}
		return nil, nil, &ParseError{Err: err}
	}

	columns := make([]string, len(header))
	for i, name := range header {
		columns[i] = strings.TrimSpace(name)
	}

	table := &model.Table{
		Columns:    columns,
		ScoreIndex: -1,
		Records:    []*model.Record{},
	}
	for i, name := range columns {
		if name == model.ScoreColumn {
			table.ScoreIndex = i
			break
		}
	}

	coercionFailures := 0
	for {
		row, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, nil, &ParseError{Err: err}
		}

		cells := make([]string, len(columns))
		copy(cells, row)

		record := &model.Record{
			ID:    len(table.Records),
			Cells: cells,
		}
		if table.ScoreIndex >= 0 {
			score, err := strconv.ParseFloat(strings.TrimSpace(cells[table.ScoreIndex]), 64)
			if err == nil {
				record.Score = score
				record.HasScore = true
			} else {
				coercionFailures++
			}
		} else {
			record.Score = model.FallbackScore
			record.HasScore = true
		}
		table.Records = append(table.Records, record)
	}

	warnings := validate(table, coercionFailures)
	return table, warnings, nil
}

// validate runs the fixed column checklist and coercion diagnostics.
func validate(t *model.Table, coercionFailures int) []string {
	warnings := []string{}

	for _, required := range RequiredColumns {
		if t.ColumnIndex(required) < 0 {
			warnings = append(warnings, fmt.Sprintf("Missing required column: %s", required))
		}
	}

	if t.ScoreIndex < 0 {
		warnings = append(warnings, fmt.Sprintf("No score column found, using default score %.1f for all records.", model.FallbackScore))
	} else if coercionFailures > 0 {
		warnings = append(warnings, fmt.Sprintf("Some score values could not be converted to numbers (%d cells).", coercionFailures))
	}

	var missingOptional []string
	for _, optional := range OptionalColumns {
		if t.ColumnIndex(optional) < 0 {
			missingOptional = append(missingOptional, optional)
		}
	}
	if len(missingOptional) > 0 {
		warnings = append(warnings, fmt.Sprintf("Optional columns not found: %s", strings.Join(missingOptional, ", ")))
	}

	return warnings
}
