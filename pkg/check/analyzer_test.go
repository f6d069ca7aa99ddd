package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// registerStubChecks resets the registry and installs two predictable
// checks: one that always fires and one that never does.
func registerStubChecks(t *testing.T) {
	t.Helper()
	check.Clear()
	t.Cleanup(check.Clear)

	check.Register(check.Def{
		ID:       "T01",
		Name:     "always-fires",
		Group:    "test",
		Severity: check.SeverityWarning,
		Check: func(f *odifile.File, _ schema.Template, _ map[string]any) []check.Violation {
			return []check.Violation{{
				CheckID:  "T01",
				Severity: check.SeverityWarning,
				Message:  "fired",
				Line:     1,
			}}
		},
	})
	check.Register(check.Def{
		ID:       "T02",
		Name:     "never-fires",
		Group:    "test",
		Severity: check.SeverityError,
		Check: func(_ *odifile.File, _ schema.Template, _ map[string]any) []check.Violation {
			return nil
		},
	})
}

func testFile() *odifile.File {
	return odifile.Parse("CALD_TXSTA_DEV_20240115.txt", "TXSTA", []string{"A"}, []byte("x\n"))
}

func TestAnalyzer_RunsEnabledChecks(t *testing.T) {
	registerStubChecks(t)

	analyzer := check.NewAnalyzer(check.NewConfig())
	violations := analyzer.Analyze(testFile(), schema.Template{})

	require.Len(t, violations, 1)
	assert.Equal(t, "T01", violations[0].CheckID)
	// File name is filled in when the check leaves it empty
	assert.Equal(t, "CALD_TXSTA_DEV_20240115.txt", violations[0].File)
}

func TestAnalyzer_DisabledCheck(t *testing.T) {
	registerStubChecks(t)

	cfg := check.NewConfig().Disable("T01")
	analyzer := check.NewAnalyzer(cfg)

	assert.Empty(t, analyzer.Analyze(testFile(), schema.Template{}))
}

func TestAnalyzer_SeverityOverride(t *testing.T) {
	registerStubChecks(t)

	cfg := check.NewConfig().SetSeverity("T01", check.SeverityHint)
	analyzer := check.NewAnalyzer(cfg)

	violations := analyzer.Analyze(testFile(), schema.Template{})
	require.Len(t, violations, 1)
	assert.Equal(t, check.SeverityHint, violations[0].Severity)
}

func TestAnalyzer_NilFile(t *testing.T) {
	registerStubChecks(t)
	analyzer := check.NewAnalyzer(nil)
	assert.Empty(t, analyzer.Analyze(nil, schema.Template{}))
}

func TestAnalyzer_RuleOptionsPassedThrough(t *testing.T) {
	check.Clear()
	t.Cleanup(check.Clear)

	var seen map[string]any
	check.Register(check.Def{
		ID:       "T03",
		Name:     "records-options",
		Group:    "test",
		Severity: check.SeverityInfo,
		Check: func(_ *odifile.File, _ schema.Template, opts map[string]any) []check.Violation {
			seen = opts
			return nil
		},
	})

	cfg := check.NewConfig().SetRuleOptions("T03", map[string]any{"limit": 5})
	check.NewAnalyzer(cfg).Analyze(testFile(), schema.Template{})

	assert.Equal(t, map[string]any{"limit": 5}, seen)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		input  string
		want   check.Severity
		wantOK bool
	}{
		{input: "error", want: check.SeverityError, wantOK: true},
		{input: "WARNING", want: check.SeverityWarning, wantOK: true},
		{input: "Info", want: check.SeverityInfo, wantOK: true},
		{input: "hint", want: check.SeverityHint, wantOK: true},
		{input: "bogus", want: check.SeverityWarning, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := check.ParseSeverity(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "error", check.SeverityError.String())
	assert.Equal(t, "warning", check.SeverityWarning.String())
	assert.Equal(t, "info", check.SeverityInfo.String())
	assert.Equal(t, "hint", check.SeverityHint.String())
	assert.Equal(t, "unknown", check.Severity(42).String())
}
