package store

import (
	"github.com/go-playground/validator/v10"

	"scrawl/internal/element"
)

// Settings are the engine-wide preferences persisted next to the documents.
type Settings struct {
	ActiveDocumentID string        `json:"activeCanvasId"`
	DefaultStyle     element.Style `json:"defaultStyle"`
	Grid             GridSettings  `json:"grid"`
	BackgroundColor  string        `json:"backgroundColor" validate:"required"`
	GridColor        string        `json:"gridColor" validate:"required"`
	SelectionColor   string        `json:"selectionColor" validate:"required"`
}

// DefaultSettings are the built-in values stored settings are merged over.
func DefaultSettings() Settings {
	return Settings{
		DefaultStyle:    element.DefaultStyle(),
		Grid:            GridSettings{Enabled: true, Snap: false, Size: 20},
		BackgroundColor: "#ffffff",
		GridColor:       "#e5e7eb",
		SelectionColor:  "#3b82f6",
	}
}

var validate = validator.New()

// Validate checks the settings, including the nested style and grid.
func (s Settings) Validate() error {
	return validate.Struct(s)
}
