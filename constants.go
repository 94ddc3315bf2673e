package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
	ModeRename
	ModeConfirm
)

type ConfirmAction int

const (
	ConfirmDeleteCanvas ConfirmAction = iota
	ConfirmClearCanvas
	ConfirmQuit
)

const (
	// defaultCellPixels is the surface width of one terminal cell. A cell
	// is two pixels tall per column pixel, so it renders as two squares.
	defaultCellPixels    = 4
	defaultExportPadding = 20.0

	zoomStep   = 1.25
	wheelZoom  = 1.1
	panCells   = 2
	fastFactor = 4
)
