// Package screens holds the full-page templ views the handlers render.
package screens

import (
	"context"
	"io"
	"strings"

	"reviewer/view/components"

	"github.com/a-h/templ"
)

// Home is the welcome screen shown before any table is loaded.
func Home() templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}
		b.WriteString("<header class=\"page-header\"><h1>Mapped Data Reviewer</h1>")
		b.WriteString("<p>Upload and review mapped client master qualification CSV data with question-answer mappings, filtering, and review tracking.</p></header>")

		b.WriteString("<section class=\"welcome\">")
		b.WriteString("<p>Please upload a CSV file or load a stored dataset to get started.</p>")
		b.WriteString("<div class=\"actions\">")
		b.WriteString("<button hx-get=\"/dataset/uploadDatasetPopup\" hx-target=\"#body\" hx-swap=\"beforeend\">Upload CSV</button>")
		b.WriteString("<button hx-get=\"/datasets\" hx-target=\"#body\" hx-select=\"#body\" hx-swap=\"outerHTML\">Stored Datasets</button>")
		b.WriteString("</div>")

		b.WriteString("<h3>Expected CSV Format</h3>")
		b.WriteString("<ul class=\"format-help\">")
		b.WriteString("<li><code>language</code>: Language/country information</li>")
		b.WriteString("<li><code>questions</code>: Survey questions</li>")
		b.WriteString("<li><code>qualification_name</code>: Qualification category</li>")
		b.WriteString("<li><code>client_answer_text</code>: Answer options</li>")
		b.WriteString("<li><code>score</code>: Numerical score (0-1 range)</li>")
		b.WriteString("<li>Other columns will be displayed as additional information</li>")
		b.WriteString("</ul>")
		b.WriteString("</section>")

		_, err := io.WriteString(w, b.String())
		return err
	})
	return components.Layout("Mapped Data Reviewer", content)
}
