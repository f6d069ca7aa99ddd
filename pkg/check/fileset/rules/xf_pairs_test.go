package filesetrules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odilint/odilint/pkg/check"
	"github.com/odilint/odilint/pkg/check/fileset"
	_ "github.com/odilint/odilint/pkg/check/fileset/rules"
	"github.com/odilint/odilint/pkg/odifile"
)

var (
	txstaHeader = []string{"ORDERID", "LINENUMBER", "SUBLINENUMBER", "EVENTTYPEID", "VALUE"}
	txtaHeader  = []string{"ORDERID", "LINENUMBER", "SUBLINENUMBER", "EVENTTYPEID", "PAYEEID"}
)

func runRule(t *testing.T, id string, ctx *fileset.Context) []check.Violation {
	t.Helper()
	rule, ok := fileset.GetByID(id)
	require.True(t, ok, "rule %s not registered", id)
	return rule.Check(ctx)
}

func pairContext(txstaRows, txtaRows string) *fileset.Context {
	txsta := odifile.Parse("CALD_TXSTA_DEV_20240115.txt", "TXSTA", txstaHeader, []byte(txstaRows))
	txta := odifile.Parse("CALD_TXTA_DEV_20240115.txt", "TXTA", txtaHeader, []byte(txtaRows))
	return fileset.NewContext(map[string][]*odifile.File{
		"TXSTA": {txsta},
		"TXTA":  {txta},
	})
}

func TestFilePairs(t *testing.T) {
	t.Run("matching pair", func(t *testing.T) {
		ctx := pairContext("ORD1\t1\t0\t10\t100\n", "ORD1\t1\t0\t10\tP1\n")
		assert.Empty(t, runRule(t, "XF01", ctx))
	})

	t.Run("transaction file without companion", func(t *testing.T) {
		txsta := odifile.Parse("CALD_TXSTA_DEV_20240115.txt", "TXSTA", txstaHeader, []byte("ORD1\t1\t0\t10\t100\n"))
		ctx := fileset.NewContext(map[string][]*odifile.File{"TXSTA": {txsta}})

		violations := runRule(t, "XF01", ctx)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0].Message, "CALD_TXTA_DEV_20240115.txt")
		assert.Equal(t, "CALD_TXSTA_DEV_20240115.txt", violations[0].File)
	})

	t.Run("assignment file without companion", func(t *testing.T) {
		txta := odifile.Parse("CALD_TXTA_DEV_20240115.txt", "TXTA", txtaHeader, []byte("ORD1\t1\t0\t10\tP1\n"))
		ctx := fileset.NewContext(map[string][]*odifile.File{"TXTA": {txta}})

		violations := runRule(t, "XF01", ctx)
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0].Message, "CALD_TXSTA_DEV_20240115.txt")
	})

	t.Run("pairing matches on the full name", func(t *testing.T) {
		txsta := odifile.Parse("CALD_TXSTA_DEV_20240115.txt", "TXSTA", txstaHeader, []byte("ORD1\t1\t0\t10\t100\n"))
		txta := odifile.Parse("CALD_TXTA_DEV_20240116.txt", "TXTA", txtaHeader, []byte("ORD1\t1\t0\t10\tP1\n"))
		ctx := fileset.NewContext(map[string][]*odifile.File{
			"TXSTA": {txsta},
			"TXTA":  {txta},
		})

		// Different dates: both sides are unpaired
		assert.Len(t, runRule(t, "XF01", ctx), 2)
	})
}

func TestTransactionsAssigned(t *testing.T) {
	t.Run("every transaction assigned", func(t *testing.T) {
		ctx := pairContext(
			"ORD1\t1\t0\t10\t100\nORD2\t1\t0\t10\t200\n",
			"ORD1\t1\t0\t10\tP1\nORD2\t1\t0\t10\tP2\n")
		assert.Empty(t, runRule(t, "XF02", ctx))
	})

	t.Run("several assignments per transaction are fine", func(t *testing.T) {
		ctx := pairContext(
			"ORD1\t1\t0\t10\t100\n",
			"ORD1\t1\t0\t10\tP1\nORD1\t1\t0\t10\tP2\n")
		assert.Empty(t, runRule(t, "XF02", ctx))
	})

	t.Run("flags unassigned transaction", func(t *testing.T) {
		ctx := pairContext(
			"ORD1\t1\t0\t10\t100\nORD2\t1\t0\t10\t200\n",
			"ORD1\t1\t0\t10\tP1\n")
		violations := runRule(t, "XF02", ctx)
		require.Len(t, violations, 1)
		assert.Equal(t, 2, violations[0].Line)
		assert.Equal(t, "CALD_TXSTA_DEV_20240115.txt", violations[0].File)
		assert.Contains(t, violations[0].Message, "ORD2, 1, 0, 10")
	})

	t.Run("unpaired files are not cross-checked", func(t *testing.T) {
		txsta := odifile.Parse("CALD_TXSTA_DEV_20240115.txt", "TXSTA", txstaHeader, []byte("ORD1\t1\t0\t10\t100\n"))
		ctx := fileset.NewContext(map[string][]*odifile.File{"TXSTA": {txsta}})
		assert.Empty(t, runRule(t, "XF02", ctx))
	})
}

func TestAssignmentsJoined(t *testing.T) {
	t.Run("every assignment joins", func(t *testing.T) {
		ctx := pairContext(
			"ORD1\t1\t0\t10\t100\n",
			"ORD1\t1\t0\t10\tP1\n")
		assert.Empty(t, runRule(t, "XF03", ctx))
	})

	t.Run("flags orphan assignment", func(t *testing.T) {
		ctx := pairContext(
			"ORD1\t1\t0\t10\t100\n",
			"ORD1\t1\t0\t10\tP1\nORD9\t1\t0\t10\tP2\n")
		violations := runRule(t, "XF03", ctx)
		require.Len(t, violations, 1)
		assert.Equal(t, 2, violations[0].Line)
		assert.Equal(t, "CALD_TXTA_DEV_20240115.txt", violations[0].File)
		assert.Contains(t, violations[0].Message, "ORD9")
	})
}

func TestFilesetAnalyzer(t *testing.T) {
	ctx := pairContext(
		"ORD1\t1\t0\t10\t100\nORD2\t1\t0\t10\t200\n",
		"ORD1\t1\t0\t10\tP1\n")

	t.Run("runs all rules", func(t *testing.T) {
		analyzer := fileset.NewAnalyzer(nil)
		violations := analyzer.Analyze(ctx)
		require.Len(t, violations, 1)
		assert.Equal(t, "XF02", violations[0].CheckID)
	})

	t.Run("disabled rule", func(t *testing.T) {
		cfg := fileset.NewAnalyzerConfig()
		cfg.DisabledRules["XF02"] = true
		assert.Empty(t, fileset.NewAnalyzer(cfg).Analyze(ctx))
	})

	t.Run("severity override", func(t *testing.T) {
		cfg := fileset.NewAnalyzerConfig()
		cfg.SeverityOverrides["XF02"] = check.SeverityInfo
		violations := fileset.NewAnalyzer(cfg).Analyze(ctx)
		require.Len(t, violations, 1)
		assert.Equal(t, check.SeverityInfo, violations[0].Severity)
	})
}
