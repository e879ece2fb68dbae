package logging

import (
	"bytes"
	"testing"

	clog "github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// swapLogger replaces L with a buffer-backed logger for the duration of the
// test.
func swapLogger(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := L
	L = clog.New(&buf)
	t.Cleanup(func() { L = prev })
	return &buf
}

func TestHelpers_WriteToBuffer(t *testing.T) {
	buf := swapLogger(t)
	L.SetLevel(clog.DebugLevel)

	Debugf("hello %s", "dbg")
	Infof("info %d", 1)
	Warnf("warn")
	Errorf("err %v", "E")

	out := buf.String()
	assert.Contains(t, out, "hello dbg")
	assert.Contains(t, out, "info 1")
	assert.Contains(t, out, "warn")
	assert.Contains(t, out, "err E")
}

func TestSetLevel_FiltersBelowLevel(t *testing.T) {
	buf := swapLogger(t)
	require.NoError(t, SetLevel("error"))

	Infof("quiet")
	Errorf("loud")

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud")
}

func TestSetLevel_Invalid(t *testing.T) {
	swapLogger(t)
	assert.Error(t, SetLevel("chatty"))
}

func TestSetOutput(t *testing.T) {
	swapLogger(t)
	var other bytes.Buffer
	SetOutput(&other)
	L.SetLevel(clog.InfoLevel)

	Infof("redirected")
	assert.Contains(t, other.String(), "redirected")
}
