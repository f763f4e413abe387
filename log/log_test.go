package log

import (
	"bytes"
	stdlog "log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger() (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return &Logger{subsystem: "test", out: stdlog.New(buf, "", 0)}, buf
}

func TestLogLevelGating(t *testing.T) {
	prev := Level(globalLevel.Load())
	defer SetLevel(prev)

	l, buf := newTestLogger()
	SetLevel(LevelWarn)
	l.Debugf("debug message")
	l.Infof("info message")
	assert.Empty(t, buf.String())

	l.Warnf("warn message")
	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "warn message")
}

func TestLogIncludesSubsystemAndFormat(t *testing.T) {
	prev := Level(globalLevel.Load())
	defer SetLevel(prev)
	SetLevel(LevelDebug)

	l, buf := newTestLogger()
	l.Errorf("fault %d on %s", 7, "channel-x")
	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "test")
	assert.Contains(t, out, "fault 7 on channel-x")
}

func TestLevelStringNames(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
}

func TestPackageSubLoggersAreDistinct(t *testing.T) {
	assert.NotSame(t, Dispatch, Channel)
	assert.Equal(t, "dispatch", Dispatch.subsystem)
	assert.Equal(t, "config", Config.subsystem)
}
