package naming

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRulesDefaults(t *testing.T) {
	rules, err := LoadRules("")
	require.NoError(t, err)
	assert.Equal(t, 64, rules.MaxNameLength)
	assert.Equal(t, 10, rules.MaxWords)
	assert.Equal(t, "Screenshot", rules.ScreenshotPrefix)
	assert.Contains(t, rules.Extensions, "png")
}

func TestLoadRulesFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "naming.yaml")
	content := `
max_name_length: 48
max_words: 6
screenshot_prefix: "Bildschirmfoto"
extensions: [png, webp]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 48, rules.MaxNameLength)
	assert.Equal(t, 6, rules.MaxWords)
	assert.Equal(t, "Bildschirmfoto", rules.ScreenshotPrefix)
	assert.Equal(t, []string{"png", "webp"}, rules.Extensions)
}

func TestLoadRulesPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "naming.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_words: 4\n"), 0644))

	rules, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, 4, rules.MaxWords)
	assert.Equal(t, 64, rules.MaxNameLength)
	assert.Equal(t, "Screenshot", rules.ScreenshotPrefix)
}

func TestLoadRulesInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "naming.yaml")
	require.NoError(t, os.WriteFile(path, []byte("max_name_length: [broken\n"), 0644))

	_, err := LoadRules(path)
	assert.Error(t, err)
}

func TestRulesValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Rules)
		wantErr bool
	}{
		{"defaults are valid", func(r *Rules) {}, false},
		{"tiny length", func(r *Rules) { r.MaxNameLength = 4 }, true},
		{"zero words", func(r *Rules) { r.MaxWords = 0 }, true},
		{"no extensions", func(r *Rules) { r.Extensions = nil }, true},
		{"dotted extension", func(r *Rules) { r.Extensions = []string{".png"} }, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rules := DefaultRules()
			c.mutate(rules)
			err := rules.Validate()
			if c.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMatchesScreenshot(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		baseName string
		eligible bool
	}{
		{"Screenshot 1.png", true},
		{"Screenshot 2025-12-29 at 10.03.10 PM.png", true},
		{"screenshot_20251229.220310.png", true},
		{"notes.txt", false},
		{"Screenshot.pdf", false},
		{"holiday.png", false},
		{"Screenshot 2.PNG", true},
	}

	for _, c := range cases {
		assert.Equal(t, c.eligible, rules.MatchesScreenshot(c.baseName), "name=%q", c.baseName)
	}
}
