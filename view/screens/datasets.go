package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"reviewer/upload"
	"reviewer/view/components"

	"github.com/a-h/templ"
)

// Datasets lists the stored CSV files with load and delete actions.
func Datasets(files []upload.File, search string) templ.Component {
	content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}

		b.WriteString("<header class=\"page-header\"><h1>Stored Datasets</h1>")
		b.WriteString("<div class=\"actions\">")
		b.WriteString("<button hx-get=\"/dataset/uploadDatasetPopup\" hx-target=\"#body\" hx-swap=\"beforeend\">Upload CSV</button>")
		b.WriteString("<a class=\"button\" href=\"/\">Back to Review</a>")
		b.WriteString("</div></header>")

		b.WriteString("<form method=\"get\" action=\"/datasets\" class=\"search\">")
		fmt.Fprintf(b, "<input type=\"text\" name=\"search\" value=\"%s\" placeholder=\"Search datasets...\">", templ.EscapeString(search))
		b.WriteString("<button type=\"submit\">Search</button>")
		b.WriteString("</form>")

		if len(files) == 0 {
			b.WriteString("<p class=\"empty-info\">No stored datasets.</p>")
		} else {
			b.WriteString("<table class=\"datasets\"><thead><tr><th>Name</th><th>Size</th><th>Type</th><th></th></tr></thead><tbody>")
			for _, file := range files {
				b.WriteString("<tr>")
				fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(file.Name))
				fmt.Fprintf(b, "<td>%d</td>", file.Size)
				fmt.Fprintf(b, "<td>%s</td>", templ.EscapeString(file.MimeType))
				b.WriteString("<td>")
				fmt.Fprintf(b, "<form hx-post=\"/api/dataset/loadDataset/%s\" hx-target=\"#body\" hx-swap=\"beforeend\">%s<button type=\"submit\">Load</button></form>",
					templ.EscapeString(file.Name), components.CSRFField(ctx))
				fmt.Fprintf(b, "<button hx-get=\"/dataset/deleteDatasetPopup?name=%s\" hx-target=\"#body\" hx-swap=\"beforeend\">Delete</button>",
					templ.EscapeString(file.Name))
				b.WriteString("</td></tr>")
			}
			b.WriteString("</tbody></table>")
		}

		_, err := io.WriteString(w, b.String())
		return err
	})
	return components.Layout("Stored Datasets", content)
}
