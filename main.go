package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"scrawl/internal/clipboard"
	"scrawl/internal/render"
	"scrawl/internal/storage"
	"scrawl/internal/store"
	"scrawl/internal/tool"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	config, err := loadConfig(configPath())
	if err != nil {
		return err
	}
	logger, err := newLogger(config)
	if err != nil {
		return err
	}
	defer logger.Sync()

	m, err := initialModel(config, logger)
	if err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := m.engine.Close(ctx); err != nil {
			logger.Error("Failed to flush canvases", zap.Error(err))
			fmt.Fprintln(os.Stderr, "scrawl: failed to flush canvases:", err)
		}
	}()

	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err = p.Run()
	return err
}

type model struct {
	width          int
	height         int
	mode           Mode
	help           bool
	helpScroll     int
	panMode        bool
	editID         string
	editText       string
	editCursorPos  int
	renameText     string
	confirmAction  ConfirmAction
	successMessage string
	errorMessage   string

	config     *Config
	logger     *zap.Logger
	engine     *store.Engine
	dispatcher *tool.Dispatcher
	renderer   *render.Renderer
}

// initialModel opens the data directory, loads the stored canvases and
// wires the engine to the tools and the renderer.
func initialModel(config *Config, logger *zap.Logger) (model, error) {
	backend, err := storage.NewFile(config.DataDir)
	if err != nil {
		return model{}, err
	}

	var cb clipboard.Store = clipboard.NewMemory()
	if config.SystemClipboard {
		if clipboard.Available() {
			cb = clipboard.System{}
		} else {
			logger.Warn("System clipboard unavailable, using in-process clipboard")
		}
	}

	engine := store.New(backend, store.WithLogger(logger), store.WithClipboard(cb))
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := engine.Load(ctx); err != nil {
		return model{}, fmt.Errorf("load canvases: %w", err)
	}

	fonts, err := render.NewFontCache()
	if err != nil {
		logger.Warn("Text rendering disabled", zap.Error(err))
		fonts = nil
	}
	return newModel(config, logger, engine, render.New(fonts, logger)), nil
}

func newModel(config *Config, logger *zap.Logger, engine *store.Engine, renderer *render.Renderer) model {
	if engine.ActiveDocument() == nil {
		engine.CreateDocument("")
	}
	return model{
		mode:       ModeNormal,
		config:     config,
		logger:     logger,
		engine:     engine,
		dispatcher: tool.NewDispatcher(engine, logger),
		renderer:   renderer,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.handleHelpKey(msg.String())
			return m, nil
		}
		switch m.mode {
		case ModeEditing:
			m.handleEditKey(msg)
			return m, nil
		case ModeRename:
			m.handleRenameKey(msg)
			return m, nil
		case ModeConfirm:
			return m, m.handleConfirmKey(msg.String())
		}
		return m, m.handleNormalKey(msg.String())
	}
	return m, nil
}
