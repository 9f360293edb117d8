package reporting

import (
	"bytes"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

const htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Tournament</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 60rem; margin: 2rem auto; }
table { border-collapse: collapse; margin-bottom: 1rem; }
th, td { padding: 0.2rem 0.6rem; border-bottom: 1px solid #ddd; }
</style>
</head>
<body>
`

// HTMLPresenter renders the markdown report to a standalone HTML page.
type HTMLPresenter struct {
	*MarkdownPresenter
	w   io.Writer
	buf bytes.Buffer
	md  goldmark.Markdown
}

// NewHTMLPresenter returns an HTMLPresenter writing to w.
func NewHTMLPresenter(w io.Writer) *HTMLPresenter {
	p := &HTMLPresenter{
		w:  w,
		md: goldmark.New(goldmark.WithExtensions(extension.Table)),
	}
	p.MarkdownPresenter = NewMarkdownPresenter(&p.buf)
	return p
}

// Flush converts the buffered markdown and writes the page.
func (p *HTMLPresenter) Flush() error {
	if err := p.MarkdownPresenter.Flush(); err != nil {
		return err
	}

	if _, err := io.WriteString(p.w, htmlHead); err != nil {
		return err
	}
	if err := p.md.Convert(p.buf.Bytes(), p.w); err != nil {
		return fmt.Errorf("rendering html: %w", err)
	}
	_, err := io.WriteString(p.w, "</body>\n</html>\n")
	return err
}
