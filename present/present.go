// Package present pretty-prints finished schema fragments for display. It
// carries no schema semantics: the engine produces fragments, this package
// only formats them.
package present

import (
	"fmt"
	"html"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/schemakit/schemakit/fragment"
)

// HTML renders frag as indented JSON wrapped in a fixed decorative container
// whose left padding is indentPixels.
func HTML(frag fragment.Fragment, indentPixels int) (string, error) {
	pretty, err := frag.Pretty()
	if err != nil {
		return "", fmt.Errorf("failed to pretty-print fragment: %w", err)
	}
	return fmt.Sprintf(
		"<div style=\"padding-left: %dpx\"><pre>%s</pre></div>",
		indentPixels, html.EscapeString(pretty),
	), nil
}

// Markdown renders the same decorated output as [HTML] converted to
// Markdown, for surfaces that display text rather than HTML.
func Markdown(frag fragment.Fragment, indentPixels int) (string, error) {
	decorated, err := HTML(frag, indentPixels)
	if err != nil {
		return "", err
	}
	markdown, err := htmltomarkdown.ConvertString(decorated)
	if err != nil {
		return "", fmt.Errorf("failed to convert schema HTML to markdown: %w", err)
	}
	return markdown, nil
}
