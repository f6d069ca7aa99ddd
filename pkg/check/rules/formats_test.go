package checkrules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

func TestNumberFormat(t *testing.T) {
	tpl := schema.Template{Tag: "TXSTA", Numbers: []string{"VALUE"}}
	header := []string{"ORDERID", "VALUE"}

	tests := []struct {
		name     string
		value    string
		wantDiag bool
	}{
		{name: "integer", value: "12345", wantDiag: false},
		{name: "decimal", value: "12345.67", wantDiag: false},
		{name: "negative", value: "-25.5", wantDiag: false},
		{name: "empty allowed", value: "", wantDiag: false},
		{name: "thousands separator", value: "12,345.67", wantDiag: true},
		{name: "trailing dot", value: "123.", wantDiag: true},
		{name: "leading dot", value: ".5", wantDiag: true},
		{name: "exponent", value: "1e5", wantDiag: true},
		{name: "text", value: "abc", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t"+tt.value+"\n"))
			violations := runCheck(t, "NF01", f, tpl)
			if tt.wantDiag {
				require.Len(t, violations, 1)
				assert.Equal(t, map[string]string{"VALUE": tt.value}, violations[0].Columns)
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}

func TestUnitTypePairing(t *testing.T) {
	tpl := schema.Template{Tag: "TXSTA", Numbers: []string{"VALUE"}}
	header := []string{"ORDERID", "VALUE", "UNITTYPEFORVALUE"}

	tests := []struct {
		name     string
		content  string
		wantDiag bool
	}{
		{name: "both filled", content: "ORD1\t100\tQuantity\n", wantDiag: false},
		{name: "both empty", content: "ORD1\t\t\n", wantDiag: false},
		{name: "value without unit type", content: "ORD1\t100\t\n", wantDiag: true},
		{name: "unit type without value", content: "ORD1\t\tQuantity\n", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := odifile.Parse("x.txt", "TXSTA", header, []byte(tt.content))
			violations := runCheck(t, "NF02", f, tpl)
			if tt.wantDiag {
				require.Len(t, violations, 1)
				assert.Contains(t, violations[0].Message, "VALUE and UNITTYPEFORVALUE")
			} else {
				assert.Empty(t, violations)
			}
		})
	}

	t.Run("skipped when header lacks the indicator column", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", []string{"ORDERID", "VALUE"}, []byte("ORD1\t100\n"))
		assert.Empty(t, runCheck(t, "NF02", f, tpl))
	})
}

func TestDateFormat(t *testing.T) {
	tpl := schema.Template{Tag: "TXSTA", Dates: []string{"COMPENSATIONDATE"}}
	header := []string{"ORDERID", "COMPENSATIONDATE"}

	tests := []struct {
		name     string
		value    string
		wantDiag bool
	}{
		{name: "full date", value: "01/15/2024", wantDiag: false},
		{name: "single digit parts", value: "1/5/2024", wantDiag: false},
		{name: "empty allowed", value: "", wantDiag: false},
		{name: "impossible month", value: "13/01/2024", wantDiag: true},
		{name: "impossible day", value: "02/30/2024", wantDiag: true},
		{name: "two digit year", value: "1/15/24", wantDiag: true},
		{name: "iso format", value: "2024-01-15", wantDiag: true},
		{name: "text", value: "January 15", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t"+tt.value+"\n"))
			violations := runCheck(t, "DF01", f, tpl)
			if tt.wantDiag {
				require.Len(t, violations, 1, "expected diagnostic for %q", tt.value)
			} else {
				assert.Empty(t, violations, "unexpected diagnostic for %q", tt.value)
			}
		})
	}
}

func TestBooleanDomain(t *testing.T) {
	tpl := schema.Template{Tag: "TXSTA", Booleans: []string{"GENERICBOOLEAN1"}}
	header := []string{"ORDERID", "GENERICBOOLEAN1"}

	tests := []struct {
		name     string
		value    string
		wantDiag bool
	}{
		{name: "zero", value: "0", wantDiag: false},
		{name: "one", value: "1", wantDiag: false},
		{name: "empty", value: "", wantDiag: false},
		{name: "two", value: "2", wantDiag: true},
		{name: "word", value: "true", wantDiag: true},
		{name: "yes", value: "Y", wantDiag: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t"+tt.value+"\n"))
			violations := runCheck(t, "BF01", f, tpl)
			if tt.wantDiag {
				require.Len(t, violations, 1)
				assert.Contains(t, violations[0].Message, "must be 0, 1 or empty")
			} else {
				assert.Empty(t, violations)
			}
		})
	}
}
