package logx

import (
	"bytes"
	"strings"
	"testing"

	"github.com/apex/log"
	"github.com/fatih/color"
)

func TestHandler(t *testing.T) {
	color.NoColor = true

	t.Run("we write the message and the fields", func(t *testing.T) {
		var buffer bytes.Buffer
		handler := NewHandler(&buffer)
		logger := &log.Logger{Level: log.DebugLevel, Handler: handler}

		logger.WithField("status", 404).Warn("request failed")

		line := buffer.String()
		if !strings.HasSuffix(line, "\n") {
			t.Fatal("expected a newline", line)
		}
		if !strings.Contains(line, "•") {
			t.Fatal("expected a bullet", line)
		}
		if !strings.Contains(line, "request failed") {
			t.Fatal("expected the message", line)
		}
		if !strings.Contains(line, "status=404") {
			t.Fatal("expected the field", line)
		}
	})

	t.Run("we honour the level", func(t *testing.T) {
		var buffer bytes.Buffer
		logger := &log.Logger{Level: log.InfoLevel, Handler: NewHandler(&buffer)}

		logger.Debug("invisible")

		if buffer.Len() != 0 {
			t.Fatal("expected no output", buffer.String())
		}
	})

	t.Run("we can use emojis", func(t *testing.T) {
		var buffer bytes.Buffer
		handler := NewHandler(&buffer)
		handler.Emoji = true
		logger := &log.Logger{Level: log.InfoLevel, Handler: handler}

		logger.Error("boom")

		if !strings.Contains(buffer.String(), "💣") {
			t.Fatal("expected an emoji", buffer.String())
		}
	})
}
