package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestBufferAndConsole(t *testing.T) {
	var console bytes.Buffer
	log := NewWithOptions(Options{Level: zapcore.InfoLevel, Console: &console})

	log.Debug("[sweep] hidden")
	log.Info("[sweep] started", zap.Int("sites", 3))
	log.Named("clip").Warn("[clip] odd edge")

	lines := log.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "[sweep] started")
	assert.Contains(t, lines[0], `"sites": 3`)
	assert.Contains(t, lines[1], "[clip] odd edge")
	assert.Contains(t, console.String(), "[clip] odd edge")
	assert.NotContains(t, log.Text(), "hidden")

	log.ClearLogs()
	assert.Empty(t, log.Lines())
}

func TestHTML(t *testing.T) {
	got := ansiToHTML("\033[32minfo\033[0m a<b")
	assert.Equal(t, `<pre><span style="color: green;">info</span> a&lt;b</pre>`, got)

	log := New()
	log.Error("[bound] failed")
	assert.Contains(t, log.HTML(), `<span style="color: red;">error</span>`)
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Info("nothing")
	log.With(zap.String("k", "v")).Error("still nothing")
	assert.Empty(t, log.Text())
	assert.Nil(t, log.Lines())
}
