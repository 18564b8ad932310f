package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInjectedHandlerReceivesRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Handler: slog.NewTextHandler(buf, nil), Component: "merge"})

	logger.Info("processed file", "file", "ElectricalBid.csv", "items", 2)
	logger.Warn("skipping file", "file", "bad.csv")

	out := buf.String()
	assert.Contains(t, out, "processed file")
	assert.Contains(t, out, "file=ElectricalBid.csv")
	assert.Contains(t, out, "component=merge")
	assert.Contains(t, out, "level=WARN")
}

func TestWithComponent(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New(Config{Handler: slog.NewTextHandler(buf, nil), Component: "app"})

	logger.WithComponent("loader").Info("scan complete")
	assert.Contains(t, buf.String(), "component=loader")
}

func TestNilHandlerDefaults(t *testing.T) {
	logger := New(Config{})
	assert.NotNil(t, logger.Logger)
}
