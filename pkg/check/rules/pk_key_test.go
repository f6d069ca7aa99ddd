package checkrules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odilint/odilint/pkg/odifile"
	"github.com/odilint/odilint/pkg/schema"
)

var keyTemplate = schema.Template{
	Tag:        "TXSTA",
	PrimaryKey: []string{"ORDERID", "LINENUMBER"},
}

func TestPrimaryKeyFilled(t *testing.T) {
	header := []string{"ORDERID", "LINENUMBER", "VALUE"}

	t.Run("all filled", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t1\t100\nORD2\t1\t200\n"))
		assert.Empty(t, runCheck(t, "PK01", f, keyTemplate))
	})

	t.Run("flags empty key columns", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t\t100\n\t\t200\n"))
		violations := runCheck(t, "PK01", f, keyTemplate)
		require.Len(t, violations, 2)
		assert.Equal(t, 1, violations[0].Line)
		assert.Equal(t, map[string]string{"LINENUMBER": ""}, violations[0].Columns)
		assert.Equal(t, 2, violations[1].Line)
		assert.Len(t, violations[1].Columns, 2)
	})

	t.Run("no primary key declared", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("\t\t\n"))
		assert.Empty(t, runCheck(t, "PK01", f, schema.Template{}))
	})
}

func TestPrimaryKeyUnique(t *testing.T) {
	header := []string{"ORDERID", "LINENUMBER", "VALUE"}

	t.Run("unique keys", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header, []byte("ORD1\t1\t100\nORD1\t2\t200\n"))
		assert.Empty(t, runCheck(t, "PK02", f, keyTemplate))
	})

	t.Run("duplicate reports later row with first line", func(t *testing.T) {
		f := odifile.Parse("x.txt", "TXSTA", header,
			[]byte("ORD1\t1\t100\nORD2\t1\t200\nORD1\t1\t300\n"))
		violations := runCheck(t, "PK02", f, keyTemplate)
		require.Len(t, violations, 1)
		assert.Equal(t, 3, violations[0].Line)
		assert.Contains(t, violations[0].Message, "first seen on line 1")
	})

	t.Run("uniqueness extends over extra columns", func(t *testing.T) {
		tpl := schema.Template{
			Tag:         "TXTA",
			PrimaryKey:  []string{"ORDERID", "LINENUMBER"},
			UniqueExtra: []string{"PAYEEID"},
		}
		h := []string{"ORDERID", "LINENUMBER", "PAYEEID"}

		// Same transaction line with distinct payees is allowed
		f := odifile.Parse("x.txt", "TXTA", h, []byte("ORD1\t1\tP1\nORD1\t1\tP2\n"))
		assert.Empty(t, runCheck(t, "PK02", f, tpl))

		// Identical assignment rows are not
		f = odifile.Parse("x.txt", "TXTA", h, []byte("ORD1\t1\tP1\nORD1\t1\tP1\n"))
		violations := runCheck(t, "PK02", f, tpl)
		require.Len(t, violations, 1)
		assert.Equal(t, 2, violations[0].Line)
	})
}
