// Package components holds the shared templ building blocks of the
// reviewer UI: the page shell, popups and form helpers. Components are
// authored directly against the templ runtime and write escaped HTML.
package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Layout wraps screen content in the full page shell: stylesheet, htmx
// and the #body swap target the view handlers retarget.
func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}
		b.WriteString("<!DOCTYPE html><html lang=\"en\"><head>")
		b.WriteString("<meta charset=\"utf-8\">")
		b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">")
		fmt.Fprintf(b, "<title>%s</title>", templ.EscapeString(title))
		b.WriteString("<link rel=\"stylesheet\" href=\"/static/style.css\">")
		b.WriteString("<script src=\"https://unpkg.com/htmx.org@1.9.12\"></script>")
		b.WriteString("</head><body><div id=\"body\">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if content != nil {
			if err := content.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div></body></html>")
		return err
	})
}

// CSRFField emits the hidden form field gorilla/csrf checks on POSTs. The
// token is placed in the request context by the request middleware.
func CSRFField(ctx context.Context) string {
	token, _ := ctx.Value("gorilla.csrf.Token").(string)
	return fmt.Sprintf("<input type=\"hidden\" name=\"gorilla.csrf.Token\" value=\"%s\">", templ.EscapeString(token))
}
