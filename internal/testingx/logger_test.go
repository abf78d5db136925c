package testingx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLogger(t *testing.T) {
	logger := &Logger{}

	logger.Debug("debug")
	logger.Debugf("debug%d", 1)
	logger.Info("info")
	logger.Infof("info%d", 1)
	logger.Warn("warn")
	logger.Warnf("warn%d", 1)

	if diff := cmp.Diff([]string{"debug", "debug1"}, logger.DebugLines()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"info", "info1"}, logger.InfoLines()); diff != "" {
		t.Fatal(diff)
	}
	if diff := cmp.Diff([]string{"warn", "warn1"}, logger.WarnLines()); diff != "" {
		t.Fatal(diff)
	}

	logger.ClearAll()
	if len(logger.DebugLines())+len(logger.InfoLines())+len(logger.WarnLines()) != 0 {
		t.Fatal("expected no lines after ClearAll")
	}
}
