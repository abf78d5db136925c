// Package logx contains logging extensions.
//
// The [*Handler] type writes apex/log entries to a terminal, coloring
// the level when the output is a terminal.
package logx

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/apex/log"
	"github.com/fatih/color"
	colorable "github.com/mattn/go-colorable"
)

var bold = color.New(color.Bold)

// Colors mapping.
var Colors = [...]*color.Color{
	log.DebugLevel: color.New(color.FgWhite),
	log.InfoLevel:  color.New(color.FgBlue),
	log.WarnLevel:  color.New(color.FgYellow),
	log.ErrorLevel: color.New(color.FgRed),
	log.FatalLevel: color.New(color.FgRed),
}

// Strings mapping.
var Strings = [...]string{
	log.DebugLevel: "•",
	log.InfoLevel:  "•",
	log.WarnLevel:  "•",
	log.ErrorLevel: "⨯",
	log.FatalLevel: "⨯",
}

// Emojis mapping, used when [Handler.Emoji] is true.
var Emojis = [...]string{
	log.DebugLevel: "🧐",
	log.InfoLevel:  "🗒️",
	log.WarnLevel:  "🔥",
	log.ErrorLevel: "💣",
	log.FatalLevel: "💀",
}

// Handler is an apex/log handler. Use [NewHandlerWithDefaultSettings]
// or [NewHandler] to construct.
type Handler struct {
	// Emoji OPTIONALLY uses emojis instead of bullets for the level.
	Emoji bool

	// Padding is the left padding of each line.
	Padding int

	// Writer is where we write log lines.
	Writer io.Writer

	mu sync.Mutex
}

var _ log.Handler = &Handler{}

// NewHandlerWithDefaultSettings creates a [*Handler] writing on [os.Stderr].
func NewHandlerWithDefaultSettings() *Handler {
	return NewHandler(os.Stderr)
}

// NewHandler creates a new [*Handler] writing on w. When w is an [*os.File]
// we wrap it so that colors also work on Windows consoles.
func NewHandler(w io.Writer) *Handler {
	if f, ok := w.(*os.File); ok {
		w = colorable.NewColorable(f)
	}
	return &Handler{
		Padding: 3,
		Writer:  w,
	}
}

// HandleLog implements log.Handler.
func (h *Handler) HandleLog(e *log.Entry) error {
	level := Strings[e.Level]
	if h.Emoji {
		level = Emojis[e.Level]
	}
	color := Colors[e.Level]
	s := color.Sprintf("%s %-25s", bold.Sprintf("%*s", h.Padding+1, level), e.Message)
	for _, name := range e.Fields.Names() {
		s += fmt.Sprintf(" %s=%v", color.Sprint(name), e.Fields.Get(name))
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := fmt.Fprintln(h.Writer, s)
	return err
}
