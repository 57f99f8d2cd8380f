package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// previewWordWrap is the column at which previews are wrapped.
const previewWordWrap = 100

// renderPreview renders markdown for reading in a terminal.
func renderPreview(markdown string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("create preview renderer: %w", err)
	}
	out, err := r.Render(markdown)
	if err != nil {
		return "", fmt.Errorf("render preview: %w", err)
	}
	return out, nil
}
