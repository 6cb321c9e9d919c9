package naming

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCandidate(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		name     string
		raw      string
		ext      string
		expected string
	}{
		{"clean proposal", "settings_python_debugger", "png", "settings_python_debugger.png"},
		{"keeps own extension", "tide_chart.png", "png", "tide_chart.png"},
		{"strips path", "/tmp/shots/tide_chart.png", "png", "tide_chart.png"},
		{"uppercase and spaces", "Settings Python Debugger", "png", "settings_python_debugger.png"},
		{"quoted answer", `"billing_invoice_march"`, "png", "billing_invoice_march.png"},
		{"punctuation runs", "error: connection refused!!", "png", "error_connection_refused.png"},
		{"foreign extension replaced", "dashboard.jpeg", "png", "dashboard.png"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := NormalizeCandidate(c.raw, c.ext, rules)
			require.NoError(t, err)
			assert.Equal(t, c.expected, got)
		})
	}
}

func TestNormalizeCandidateEnforcesWordLimit(t *testing.T) {
	rules := DefaultRules()

	raw := "one two three four five six seven eight nine ten eleven twelve"
	got, err := NormalizeCandidate(raw, "png", rules)
	require.NoError(t, err)

	stem := strings.TrimSuffix(got, ".png")
	assert.LessOrEqual(t, len(strings.Split(stem, "_")), rules.MaxWords)
}

func TestNormalizeCandidateEnforcesLengthLimit(t *testing.T) {
	rules := DefaultRules()

	raw := strings.Repeat("verylongword_", 20)
	got, err := NormalizeCandidate(raw, "png", rules)
	require.NoError(t, err)

	assert.LessOrEqual(t, len(got), rules.MaxNameLength)
	assert.True(t, strings.HasSuffix(got, ".png"))
	assert.False(t, strings.Contains(strings.TrimSuffix(got, ".png"), "__"))
}

func TestNormalizeCandidateMatchesPolicyPattern(t *testing.T) {
	rules := DefaultRules()

	got, err := NormalizeCandidate("Settings > Python Debugger", "png", rules)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^[a-z0-9_]+\.png$`), got)
}

func TestNormalizeCandidateRejectsEmptyProposals(t *testing.T) {
	rules := DefaultRules()

	for _, raw := range []string{"", "   ", "!!!", `"..."`} {
		_, err := NormalizeCandidate(raw, "png", rules)
		assert.Error(t, err, "raw=%q", raw)
	}
}
