package scraper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const testDataFolder = "testdata"

func readFixture(t *testing.T, fileName string) string {
	t.Helper()
	contents, err := os.ReadFile(filepath.Join(testDataFolder, fileName))
	require.NoError(t, err, "error on reading fixture %s", fileName)
	return string(contents)
}

func TestNewDefaults(t *testing.T) {
	p := New()
	assert.Equal(t, DefaultBaseURL, p.BaseURL())
	assert.Equal(t, 0, p.letterLimit)
	assert.Equal(t, 0, p.jobLimit)
	assert.NotNil(t, p.logger)
}

func TestNewOptions(t *testing.T) {
	p := New(
		WithBaseURL("https://example.test"),
		WithLetterLimit(3),
		WithJobLimit(7),
		WithLogger(nil),
	)
	assert.Equal(t, "https://example.test", p.BaseURL())
	assert.Equal(t, 3, p.letterLimit)
	assert.Equal(t, 7, p.jobLimit)
	assert.NotNil(t, p.logger, "a nil logger keeps the no-op default")
}

func TestWithinLimit(t *testing.T) {
	assert.True(t, withinLimit(100, 0))
	assert.True(t, withinLimit(100, -1))
	assert.True(t, withinLimit(1, 2))
	assert.False(t, withinLimit(2, 2))
}

func TestIssuesAreLogged(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	p := New(WithLogger(zap.New(core)))

	_, issues := p.ParseIndex("<html><body></body></html>")
	require.Len(t, issues, 1)

	entries := logs.FilterMessage("parse issue").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "index", entries[0].ContextMap()["page"])
	assert.Equal(t, "selector_miss", entries[0].ContextMap()["kind"])
}
