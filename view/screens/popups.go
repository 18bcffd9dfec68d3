package screens

import (
	"context"
	"fmt"
	"io"
	"strings"

	"reviewer/view/components"

	"github.com/a-h/templ"
)

// UploadDatasetPopup is the CSV upload dialog.
func UploadDatasetPopup() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}
		b.WriteString("<div class=\"popup popup-dialog\">")
		b.WriteString("<div class=\"popup-title\">Upload CSV</div>")
		b.WriteString("<form hx-post=\"/api/dataset/uploadDataset\" hx-encoding=\"multipart/form-data\" hx-target=\"#body\" hx-swap=\"beforeend\">")
		b.WriteString(components.CSRFField(ctx))
		b.WriteString("<input type=\"file\" name=\"dataset_file\" accept=\".csv\" required>")
		b.WriteString("<button type=\"submit\">Upload</button>")
		b.WriteString("</form>")
		b.WriteString("<button class=\"popup-close\" onclick=\"this.closest('.popup').remove()\">Cancel</button>")
		b.WriteString("</div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// DeleteDatasetPopup confirms deletion of the named stored files.
func DeleteDatasetPopup(names []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}
		b.WriteString("<div class=\"popup popup-dialog\">")
		b.WriteString("<div class=\"popup-title\">Delete Datasets</div>")
		fmt.Fprintf(b, "<div class=\"popup-message\">Delete %d dataset(s)?<ul>", len(names))
		for _, name := range names {
			fmt.Fprintf(b, "<li>%s</li>", templ.EscapeString(name))
		}
		b.WriteString("</ul></div>")
		b.WriteString("<form hx-post=\"/api/dataset/deleteDatasets\" hx-target=\"#body\" hx-swap=\"beforeend\">")
		b.WriteString(components.CSRFField(ctx))
		for _, name := range names {
			fmt.Fprintf(b, "<input type=\"hidden\" name=\"name\" value=\"%s\">", templ.EscapeString(name))
		}
		b.WriteString("<button type=\"submit\">Delete</button>")
		b.WriteString("</form>")
		b.WriteString("<button class=\"popup-close\" onclick=\"this.closest('.popup').remove()\">Cancel</button>")
		b.WriteString("</div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
