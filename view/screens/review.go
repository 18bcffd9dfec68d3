package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"reviewer/model"
	"reviewer/view/components"

	"github.com/a-h/templ"
)

// Review renders the full review screen: filters, metrics, export
// actions, the paginated table with selection checkboxes and the bulk
// review actions. The surrounding div re-fetches itself on the
// reloadReview event every mutating action triggers.
func Review(view *model.ReviewView) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}

		fmt.Fprintf(b, "<div id=\"review\" hx-get=\"/review?%s\" hx-trigger=\"reloadReview from:body\" hx-target=\"#body\" hx-select=\"#body\" hx-swap=\"outerHTML\">", view.Query)

		b.WriteString("<header class=\"page-header\"><h1>Mapped Data Reviewer</h1>")
		fmt.Fprintf(b, "<p>Dataset: <strong>%s</strong> &mdash; %d records</p>", templ.EscapeString(view.Source), view.TotalRecords)
		b.WriteString("<div class=\"actions\">")
		b.WriteString("<button hx-get=\"/dataset/uploadDatasetPopup\" hx-target=\"#body\" hx-swap=\"beforeend\">Upload CSV</button>")
		b.WriteString("<button hx-get=\"/datasets\" hx-target=\"#body\" hx-select=\"#body\" hx-swap=\"outerHTML\">Stored Datasets</button>")
		writeClearReviewsForm(ctx, b)
		b.WriteString("</div></header>")

		writeWarnings(b, view.Warnings)
		writeFilters(b, view)
		writeMetrics(b, view)
		writeExports(b, view)

		if len(view.Rows) > 0 {
			writeTable(ctx, b, view)
			fmt.Fprintf(b, "<p class=\"page-info\">Showing items %d-%d of %d (page %d of %d)</p>",
				view.Start, view.End, view.FilteredCount, view.Page, view.TotalPages)
		} else {
			b.WriteString("<p class=\"empty-info\">No data matches the current filters.</p>")
		}

		b.WriteString("</div>")

		_, err := io.WriteString(w, b.String())
		return err
	})
	return components.Layout("Mapped Data Reviewer", content)
}

func writeWarnings(b *strings.Builder, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	b.WriteString("<section class=\"warnings\"><h3>Validation</h3><ul>")
	for _, warning := range warnings {
		fmt.Fprintf(b, "<li>%s</li>", templ.EscapeString(warning))
	}
	b.WriteString("</ul></section>")
}

func writeFilters(b *strings.Builder, view *model.ReviewView) {
	b.WriteString("<section class=\"filters\"><h3>Filters</h3>")
	b.WriteString("<form method=\"get\" action=\"/review\">")

	b.WriteString("<label>Filter by Language<select name=\"language\" multiple size=\"4\">")
	for _, language := range view.Languages {
		selected := ""
		if view.LanguageSelected(language) {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", templ.EscapeString(language), selected, templ.EscapeString(language))
	}
	b.WriteString("</select></label>")

	b.WriteString("<label>Filter by Qualification<select name=\"qualification\" multiple size=\"4\">")
	for _, qualification := range view.Qualifications {
		selected := ""
		if view.QualificationSelected(qualification) {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", templ.EscapeString(qualification), selected, templ.EscapeString(qualification))
	}
	b.WriteString("</select></label>")

	scoreMin := ""
	if view.Spec.ScoreMin != nil {
		scoreMin = fmt.Sprintf("%.3f", *view.Spec.ScoreMin)
	}
	scoreMax := ""
	if view.Spec.ScoreMax != nil {
		scoreMax = fmt.Sprintf("%.3f", *view.Spec.ScoreMax)
	}
	fmt.Fprintf(b, "<label>Score Min<input type=\"number\" name=\"scoreMin\" step=\"0.001\" value=\"%s\" placeholder=\"%.3f\"></label>", scoreMin, view.ScoreFloor)
	fmt.Fprintf(b, "<label>Score Max<input type=\"number\" name=\"scoreMax\" step=\"0.001\" value=\"%s\" placeholder=\"%.3f\"></label>", scoreMax, view.ScoreCeil)

	b.WriteString("<label>Review Status<select name=\"status\">")
	for _, option := range []struct {
		Value model.ReviewStatus
		Label string
	}{
		{model.ReviewStatusAll, "All"},
		{model.ReviewStatusReviewed, "Reviewed"},
		{model.ReviewStatusNotReviewed, "Not Reviewed"},
	} {
		selected := ""
		if view.Spec.Status == option.Value {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%s\"%s>%s</option>", option.Value, selected, option.Label)
	}
	b.WriteString("</select></label>")

	fmt.Fprintf(b, "<label>Search<input type=\"text\" name=\"search\" value=\"%s\" placeholder=\"Search across all fields...\"></label>", templ.EscapeString(view.Spec.Search))

	b.WriteString("<label>Items per page<select name=\"size\">")
	for _, size := range model.PageSizes {
		selected := ""
		if view.PageSize == size {
			selected = " selected"
		}
		fmt.Fprintf(b, "<option value=\"%d\"%s>%d</option>", size, selected, size)
	}
	b.WriteString("</select></label>")

	fmt.Fprintf(b, "<label>Page<input type=\"number\" name=\"page\" min=\"1\" max=\"%d\" value=\"%d\"></label>", view.TotalPages, view.Page)

	b.WriteString("<button type=\"submit\">Apply Filters</button>")
	b.WriteString("<a class=\"button\" href=\"/review\">Clear All Filters</a>")
	b.WriteString("</form></section>")
}

func writeMetrics(b *strings.Builder, view *model.ReviewView) {
	b.WriteString("<section class=\"metrics\">")
	fmt.Fprintf(b, "<div class=\"metric\"><span>Total Records</span><strong>%d</strong></div>", view.TotalRecords)
	fmt.Fprintf(b, "<div class=\"metric\"><span>Filtered Records</span><strong>%d</strong></div>", view.FilteredCount)
	fmt.Fprintf(b, "<div class=\"metric\"><span>Reviewed Items</span><strong>%d</strong></div>", view.ReviewedCount)
	if view.HasScores {
		fmt.Fprintf(b, "<div class=\"metric\"><span>High Score (&gt;0.8)</span><strong>%d</strong></div>", view.HighScoreCount)
	} else {
		b.WriteString("<div class=\"metric\"><span>High Score (&gt;0.8)</span><strong>N/A</strong></div>")
	}
	b.WriteString("</section>")
}

func writeExports(b *strings.Builder, view *model.ReviewView) {
	if view.FilteredCount == 0 {
		return
	}
	b.WriteString("<section class=\"exports\">")
	fmt.Fprintf(b, "<a class=\"button\" href=\"/api/export/exportFiltered?%s\">Export All Filtered Data</a>", view.Query)
	if view.CanExportReviewed {
		fmt.Fprintf(b, "<a class=\"button\" href=\"/api/export/exportReviewed?%s\">Export Reviewed Items</a>", view.Query)
	} else {
		b.WriteString("<button disabled title=\"No reviewed items to export\">Export Reviewed Items</button>")
	}
	if view.CanExportNotReviewed {
		fmt.Fprintf(b, "<a class=\"button\" href=\"/api/export/exportNotReviewed?%s\">Export Non-Reviewed Items</a>", view.Query)
	} else {
		b.WriteString("<button disabled title=\"No non-reviewed items to export\">Export Non-Reviewed Items</button>")
	}
	b.WriteString("</section>")
}

func writeClearReviewsForm(ctx context.Context, b *strings.Builder) {
	b.WriteString("<form hx-post=\"/api/review/clearReviews\" hx-target=\"#body\" hx-swap=\"beforeend\">")
	b.WriteString(components.CSRFField(ctx))
	b.WriteString("<button type=\"submit\">Clear All Reviews</button>")
	b.WriteString("</form>")
}

func writeTable(ctx context.Context, b *strings.Builder, view *model.ReviewView) {
	b.WriteString("<form id=\"reviewForm\" class=\"review-table\">")
	b.WriteString(components.CSRFField(ctx))

	b.WriteString("<div class=\"bulk-actions\">")
	b.WriteString("<button hx-post=\"/api/review/markReviewed\" hx-include=\"#reviewForm\" hx-target=\"#body\" hx-swap=\"beforeend\">Mark Selected as Reviewed</button>")
	b.WriteString("<button hx-post=\"/api/review/unmarkReviewed\" hx-include=\"#reviewForm\" hx-target=\"#body\" hx-swap=\"beforeend\">Unmark Selected</button>")
	b.WriteString("</div>")

	b.WriteString("<table><thead><tr>")
	b.WriteString("<th>Select</th><th>Row #</th><th>Reviewed</th><th>Score</th><th>Language</th>")
	b.WriteString("<th>Original Qualification</th><th>Client Qualification</th>")
	b.WriteString("<th>Original Question</th><th>Client Question</th>")
	b.WriteString("<th>Original Answer</th><th>Client Answer</th>")
	for _, column := range view.ExtraColumns {
		fmt.Fprintf(b, "<th>Extra: %s</th>", templ.EscapeString(column))
	}
	b.WriteString("</tr></thead><tbody>")

	for _, row := range view.Rows {
		b.WriteString("<tr>")
		fmt.Fprintf(b, "<td><input type=\"checkbox\" name=\"id\" value=\"%d\"></td>", row.ID)
		fmt.Fprintf(b, "<td>%d</td>", row.Number)
		if row.Reviewed {
			b.WriteString("<td class=\"reviewed-yes\">Yes</td>")
		} else {
			b.WriteString("<td class=\"reviewed-no\">No</td>")
		}
		fmt.Fprintf(b, "<td class=\"%s\">%s</td>", row.ScoreClass, templ.EscapeString(row.ScoreText))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.Language))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.Qualification))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.ClientQualification))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.Question))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.ClientQuestion))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.Answer))
		fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(row.ClientAnswer))
		for _, extra := range row.Extras {
			fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(extra))
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table></form>")
}
