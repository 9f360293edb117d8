package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/spboyer/bracketsim/internal/bracket"
)

// Output formats understood by NewRenderer.
const (
	FormatText     = "text"
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
	FormatJSON     = "json"
)

// Formats lists every supported output format.
var Formats = []string{FormatText, FormatMarkdown, FormatHTML, FormatJSON}

// Renderer is a presenter that may buffer its output until the tournament is
// over. Flush must be called once, after the run.
type Renderer interface {
	bracket.Presenter
	Flush() error
}

// NewRenderer returns the renderer for format, writing to w.
func NewRenderer(format string, w io.Writer) (Renderer, error) {
	switch strings.ToLower(format) {
	case "", FormatText:
		return NewTextPresenter(w), nil
	case FormatMarkdown, "md":
		return NewMarkdownPresenter(w), nil
	case FormatHTML:
		return NewHTMLPresenter(w), nil
	case FormatJSON:
		return NewJSONPresenter(w), nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
}
