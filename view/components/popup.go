package components

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// PopupSuccess renders a dismissable success popup, appended to #body by
// the renderPopup helper.
func PopupSuccess(title string, message string) templ.Component {
	return popup("popup-success", title, message)
}

// PopupError renders a dismissable error popup.
func PopupError(title string, message string) templ.Component {
	return popup("popup-error", title, message)
}

func popup(class string, title string, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		b := &strings.Builder{}
		fmt.Fprintf(b, "<div class=\"popup %s\">", class)
		fmt.Fprintf(b, "<div class=\"popup-title\">%s</div>", templ.EscapeString(title))
		fmt.Fprintf(b, "<div class=\"popup-message\">%s</div>", templ.EscapeString(message))
		b.WriteString("<button class=\"popup-close\" onclick=\"this.closest('.popup').remove()\">Close</button>")
		b.WriteString("</div>")
		_, err := io.WriteString(w, b.String())
		return err
	})
}
