// Package store is the document store of the canvas: an Engine aggregate
// owning the documents, their undo history, the transient view state of the
// active gesture, and the engine settings.
//
// The Engine is driven from a single event loop and is not safe for
// concurrent use. Persistence is fire-and-forget: mutations submit the new
// state to an asynchronous writer and never wait for storage.
package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"scrawl/internal/clipboard"
	"scrawl/internal/element"
	"scrawl/internal/history"
	"scrawl/internal/storage"
)

// Keys the engine persists under.
const (
	DocumentsKey = "scrawl.canvases"
	SettingsKey  = "scrawl.settings"
	ClipboardKey = "scrawl.clipboard"
)

// PasteOffset is applied to pasted and duplicated elements on both axes.
const PasteOffset = 20.0

type Engine struct {
	docs     []*Document
	activeID string
	settings Settings

	history *history.Manager
	gesture gesture
	view    Transient

	backend   storage.Backend
	writer    *storage.AsyncWriter
	clipboard clipboard.Store
	logger    *zap.Logger

	listeners    map[int]func(Change)
	nextListener int

	now   func() time.Time
	newID func() string
}

// gesture coalesces the mutations of one pointer gesture into a single
// history entry, recorded lazily on the first real change.
type gesture struct {
	active bool
	saved  bool
}

type Option func(*Engine)

func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

func WithClipboard(c clipboard.Store) Option {
	return func(e *Engine) { e.clipboard = c }
}

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithIDs overrides the id generator.
func WithIDs(newID func() string) Option {
	return func(e *Engine) { e.newID = newID }
}

// New creates an engine persisting to backend. A nil backend keeps all state
// in memory.
func New(backend storage.Backend, opts ...Option) *Engine {
	e := &Engine{
		settings:  DefaultSettings(),
		history:   history.New(),
		backend:   backend,
		clipboard: clipboard.NewMemory(),
		logger:    zap.NewNop(),
		listeners: make(map[int]func(Change)),
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	if backend != nil {
		e.writer = storage.NewAsyncWriter(backend, e.logger.Named("persist"))
	}
	return e
}

func (e *Engine) Logger() *zap.Logger { return e.logger }

// Now reads the engine clock.
func (e *Engine) Now() time.Time { return e.now() }

// Documents returns the registry in creation order. Callers must not mutate
// the returned documents.
func (e *Engine) Documents() []*Document {
	return e.docs
}

func (e *Engine) document(id string) *Document {
	for _, d := range e.docs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// ActiveDocument returns the active document, or nil when there is none.
func (e *Engine) ActiveDocument() *Document {
	return e.document(e.activeID)
}

// Element looks up an element of the active document.
func (e *Engine) Element(id string) (*element.Element, bool) {
	doc := e.ActiveDocument()
	if doc == nil {
		return nil, false
	}
	el := doc.Element(id)
	return el, el != nil
}

// mutate runs fn against the active document's elements and groups. When fn
// reports a change, the pre-mutation snapshot goes to history, the document
// is stamped, persisted and subscribers are notified. A missing active document or an fn
// returning false leaves everything untouched.
func (e *Engine) mutate(fn func(doc *Document) bool) bool {
	doc := e.ActiveDocument()
	if doc == nil {
		return false
	}
	before := doc.snapshot()
	if !fn(doc) {
		return false
	}
	e.record(doc, before)
	doc.pruneReferences()
	doc.UpdatedAt = e.now().UnixMilli()
	e.persistDocuments()
	e.notify(ChangeElements)
	return true
}

func (e *Engine) record(doc *Document, before history.Snapshot) {
	if e.gesture.active {
		if e.gesture.saved {
			return
		}
		e.gesture.saved = true
	}
	e.history.Save(doc.ID, before)
}

// BeginGesture starts coalescing mutations into one history entry until
// EndGesture.
func (e *Engine) BeginGesture() {
	e.gesture = gesture{active: true}
}

func (e *Engine) EndGesture() {
	e.gesture = gesture{}
}

// Undo restores the previous elements and groups of the active document and
// clears its selection. It is a no-op when there is nothing to undo.
func (e *Engine) Undo() bool {
	return e.travel(e.history.Undo)
}

// Redo is the mirror of Undo.
func (e *Engine) Redo() bool {
	return e.travel(e.history.Redo)
}

func (e *Engine) travel(step func(string, history.Snapshot) (history.Snapshot, bool)) bool {
	doc := e.ActiveDocument()
	if doc == nil {
		return false
	}
	restored, ok := step(doc.ID, doc.snapshot())
	if !ok {
		return false
	}
	doc.Elements = restored.Elements
	doc.Groups = restored.Groups
	doc.SelectedIDs = []string{}
	doc.pruneReferences()
	doc.UpdatedAt = e.now().UnixMilli()
	e.persistDocuments()
	e.notify(ChangeElements)
	return true
}

func (e *Engine) CanUndo() bool {
	doc := e.ActiveDocument()
	return doc != nil && e.history.CanUndo(doc.ID)
}

func (e *Engine) CanRedo() bool {
	doc := e.ActiveDocument()
	return doc != nil && e.history.CanRedo(doc.ID)
}

// Settings returns a copy of the current settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// UpdateSettings applies fn to a copy of the settings and keeps the result
// when it validates.
func (e *Engine) UpdateSettings(fn func(*Settings)) error {
	next := e.settings
	fn(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	next.ActiveDocumentID = e.activeID
	e.settings = next
	e.persistSettings()
	e.notify(ChangeSettings)
	return nil
}
