package gui

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"runtime"
	"strings"
)

// guiLogLevel controls the log level for GUI debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var guiLogLevel = new(slog.LevelVar)

// SetVerbose enables or disables verbose/debug logging for GUI components.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		guiLogLevel.Set(slog.LevelDebug)
	} else {
		guiLogLevel.Set(slog.LevelInfo)
	}
}

// guiVerbose returns true if GUI debug logging is enabled.
func guiVerbose() bool {
	return guiLogLevel.Level() <= slog.LevelDebug
}

// guiLogger is the default logger for every Context. WithLogger replaces it per GUI.
var guiLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: guiLogLevel}))

// UsageErrorKind classifies a fatal misuse of the GUI core.
type UsageErrorKind uint8

const (
	ErrIDStackOverflow UsageErrorKind = iota + 1
	ErrIDStackUnderflow
	ErrPanelStackOverflow
	ErrPanelStackUnderflow
	ErrBoxStackUnderflow
	ErrBoxCapacity
	ErrPanelCapacity
	ErrRetainedCapacity
	ErrLeafFit
	ErrAlreadyLinked
	ErrFrameOrder
	ErrNoPanel
)

var usageErrorNames = [...]string{
	ErrIDStackOverflow:     "id stack overflow",
	ErrIDStackUnderflow:    "id stack underflow",
	ErrPanelStackOverflow:  "panel stack overflow",
	ErrPanelStackUnderflow: "panel stack underflow",
	ErrBoxStackUnderflow:   "box stack underflow",
	ErrBoxCapacity:         "box capacity",
	ErrPanelCapacity:       "panel capacity",
	ErrRetainedCapacity:    "retained capacity",
	ErrLeafFit:             "leaf fit",
	ErrAlreadyLinked:       "already linked",
	ErrFrameOrder:          "frame order",
	ErrNoPanel:             "no panel",
}

func (k UsageErrorKind) String() string {
	if int(k) < len(usageErrorNames) && usageErrorNames[k] != "" {
		return usageErrorNames[k]
	}
	return "unknown"
}

// UsageError is the panic value for capacity and usage-order violations.
// These are programming errors: the library never recovers from them.
type UsageError struct {
	Kind UsageErrorKind
	Msg  string
	File string
	Line int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s:%d: gui %s: %s", e.File, e.Line, e.Kind, e.Msg)
}

// fatalf logs the violation and panics with a *UsageError tagged with the
// first caller outside this package.
func (ctx *Context) fatalf(kind UsageErrorKind, format string, args ...any) {
	file, line := callerOutside()
	err := &UsageError{Kind: kind, Msg: fmt.Sprintf(format, args...), File: file, Line: line}
	ctx.log.Error("fatal usage violation", "kind", kind.String(), "msg", err.Msg, "at", fmt.Sprintf("%s:%d", file, line))
	panic(err)
}

func callerOutside() (string, int) {
	pcs := make([]uintptr, 24)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var last runtime.Frame
	for {
		f, more := frames.Next()
		last = f
		if !isGUIFrame(f.Function) || !more {
			break
		}
	}
	return last.File, last.Line
}

// selfPkg is the import path prefix of this package's functions.
var selfPkg = reflect.TypeFor[Context]().PkgPath() + "."

func isGUIFrame(fn string) bool {
	return strings.HasPrefix(fn, selfPkg)
}
