package store

import (
	"context"
	"encoding/json"
	"fmt"

	"go.uber.org/zap"

	"scrawl/internal/element"
	"scrawl/internal/history"
)

// Save submits the documents and settings to the persister. It returns as
// soon as the values are queued.
func (e *Engine) Save() {
	e.persistDocuments()
	e.persistSettings()
}

func (e *Engine) persistDocuments() {
	e.submit(DocumentsKey, e.docs)
}

func (e *Engine) persistSettings() {
	e.submit(SettingsKey, e.settings)
}

func (e *Engine) submit(key string, v any) {
	if e.writer == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		e.logger.Error("Failed to encode value", zap.String("key", key), zap.Error(err))
		return
	}
	if err := e.writer.Submit(key, data); err != nil {
		e.logger.Error("Failed to queue value", zap.String("key", key), zap.Error(err))
	}
}

// Load replaces the engine state with what the backend holds and starts
// every document with empty undo history. Stored settings
// are merged over the defaults; settings that fail validation are dropped.
// Read failures are logged and leave the defaults in place; only stored data
// that cannot be decoded is returned as an error.
func (e *Engine) Load(ctx context.Context) error {
	if e.backend == nil {
		return nil
	}

	settings := DefaultSettings()
	if raw := e.read(ctx, SettingsKey); raw != nil {
		if err := json.Unmarshal(raw, &settings); err != nil {
			return fmt.Errorf("decode settings: %w", err)
		}
		if err := settings.Validate(); err != nil {
			e.logger.Warn("Stored settings are invalid, using defaults", zap.Error(err))
			settings = DefaultSettings()
		}
	}

	var docs []*Document
	if raw := e.read(ctx, DocumentsKey); raw != nil {
		if err := json.Unmarshal(raw, &docs); err != nil {
			return fmt.Errorf("decode documents: %w", err)
		}
	}
	docs = migrate(docs)

	e.docs = docs
	e.settings = settings
	e.history = history.New()
	e.view = Transient{}
	e.gesture = gesture{}
	e.activeID = ""
	if e.document(settings.ActiveDocumentID) != nil {
		e.activeID = settings.ActiveDocumentID
	} else if len(docs) > 0 {
		e.activeID = docs[0].ID
	}
	e.settings.ActiveDocumentID = e.activeID

	e.logger.Info("Loaded documents", zap.Int("count", len(docs)), zap.String("active", e.activeID))
	e.notify(ChangeDocuments)
	return nil
}

func (e *Engine) read(ctx context.Context, key string) []byte {
	raw, err := e.backend.Get(ctx, key)
	if err != nil {
		e.logger.Error("Failed to read value", zap.String("key", key), zap.Error(err))
		return nil
	}
	return raw
}

// migrate fills fields absent from older stored documents.
func migrate(docs []*Document) []*Document {
	out := docs[:0]
	for _, d := range docs {
		if d == nil {
			continue
		}
		if d.Groups == nil {
			d.Groups = []element.Group{}
		}
		if d.Elements == nil {
			d.Elements = []element.Element{}
		}
		if d.SelectedIDs == nil {
			d.SelectedIDs = []string{}
		}
		if d.Tool == "" {
			d.Tool = ToolSelect
		}
		if d.View.Zoom <= 0 {
			d.View.Zoom = DefaultZoom
		}
		if d.Grid.Size <= 0 {
			d.Grid.Size = DefaultSettings().Grid.Size
		}
		d.pruneReferences()
		out = append(out, d)
	}
	return out
}

// Flush waits until every queued write has reached the backend.
func (e *Engine) Flush(ctx context.Context) error {
	if e.writer == nil {
		return nil
	}
	return e.writer.Flush(ctx)
}

// Close flushes pending writes and stops the persister.
func (e *Engine) Close(ctx context.Context) error {
	if e.writer == nil {
		return nil
	}
	return e.writer.Close(ctx)
}
