package main

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// exportPNG writes the visible elements of the active canvas to
// <canvas-name>.png in the export directory.
func (m *model) exportPNG() error {
	doc := m.engine.ActiveDocument()
	if doc == nil {
		return fmt.Errorf("no canvas available")
	}

	dc, err := m.renderer.Image(doc, m.engine.Settings(), m.config.ExportPadding)
	if err != nil {
		return err
	}

	path, err := m.config.GetExportPath(exportFilename(doc.Name))
	if err != nil {
		return err
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	m.logger.Info("Exported canvas",
		zap.String("canvas_id", doc.ID),
		zap.String("path", path),
		zap.Int("width", dc.Width()),
		zap.Int("height", dc.Height()))
	m.successMessage = "Exported to " + path
	return nil
}

// exportFilename turns a canvas name into a file name: lower case, with
// every run of other characters collapsed to a single dash.
func exportFilename(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = "canvas"
	}
	return slug + ".png"
}
