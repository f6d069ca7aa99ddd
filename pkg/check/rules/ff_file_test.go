package checkrules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odilint/odilint/pkg/check"
	_ "github.com/odilint/odilint/pkg/check/rules"
	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

// runCheck invokes a registered check directly.
func runCheck(t *testing.T, id string, f *odifile.File, tpl schema.Template) []check.Violation {
	t.Helper()
	def, ok := check.GetByID(id)
	require.True(t, ok, "check %s not registered", id)
	return def.Check(f, tpl, nil)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		wantDiag bool
	}{
		{name: "valid", filename: "CALD_TXSTA_DEV_20070805_134257_JULY07.txt", wantDiag: false},
		{name: "valid without time", filename: "CALD_TXSTA_DEV_20070805.txt", wantDiag: false},
		{name: "bad tenant", filename: "CA_TXSTA_DEV_20070805.txt", wantDiag: true},
		{name: "bad date", filename: "CALD_TXSTA_DEV_200708.txt", wantDiag: true},
		{name: "not a transport name", filename: "transactions.txt", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := odifile.Parse(tt.filename, "TXSTA", []string{"A"}, []byte("x\n"))
			violations := runCheck(t, "FF01", f, schema.Template{})
			if tt.wantDiag {
				require.Len(t, violations, 1)
				assert.Equal(t, "FF01", violations[0].CheckID)
				assert.Equal(t, check.SeverityError, violations[0].Severity)
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}

func TestFileContent(t *testing.T) {
	t.Run("empty file", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", []string{"A"}, nil)
		violations := runCheck(t, "FF02", f, schema.Template{})
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0].Message, "empty")
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", []string{"A"}, []byte{0xff, 0xfe, 0x41})
		violations := runCheck(t, "FF02", f, schema.Template{})
		require.Len(t, violations, 1)
		assert.Contains(t, violations[0].Message, "UTF-8")
	})

	t.Run("valid content", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", []string{"A"}, []byte("héllo\n"))
		assert.Empty(t, runCheck(t, "FF02", f, schema.Template{}))
	})
}

func TestTabDelimited(t *testing.T) {
	header := []string{"A", "B"}

	t.Run("all lines delimited", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("1\t2\n3\t4\n"))
		assert.Empty(t, runCheck(t, "FF03", f, schema.Template{}))
	})

	t.Run("flags undelimited lines", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("1\t2\nno tabs here\n5\t6\n"))
		violations := runCheck(t, "FF03", f, schema.Template{})
		require.Len(t, violations, 1)
		assert.Equal(t, 2, violations[0].Line)
	})
}

func TestHeaderRow(t *testing.T) {
	header := []string{"ORDERID", "LINENUMBER", "VALUE"}

	t.Run("data first line", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t1\t100\n"))
		assert.Empty(t, runCheck(t, "FF04", f, schema.Template{}))
	})

	t.Run("header row as data", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORDERID\tLINENUMBER\tVALUE\nORD1\t1\t100\n"))
		violations := runCheck(t, "FF04", f, schema.Template{})
		require.Len(t, violations, 1)
		assert.Equal(t, 1, violations[0].Line)
		assert.Contains(t, violations[0].Message, "header row")
	})

	t.Run("partial header match still flagged", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORDERID\t1\t100\n"))
		violations := runCheck(t, "FF04", f, schema.Template{})
		require.Len(t, violations, 1)
		assert.Equal(t, map[string]string{"ORDERID": "ORDERID"}, violations[0].Columns)
	})

	t.Run("empty file", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, nil)
		assert.Empty(t, runCheck(t, "FF04", f, schema.Template{}))
	})
}
