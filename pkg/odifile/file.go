// Package odifile models ODI/XDL flat-file exports: transport file naming,
// header fixtures, and tab-delimited row sets.
//
// Export files carry no header row. Column names come from per-template
// header fixtures, one file per template tag, whose first line is the
// tab-separated column list.
package odifile

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"
)

// namePattern matches the documented transport file name:
// <TENANT>_<TEMPLATE>_<ENV>_<YYYYMMDD>[_<HHMISS>][_<TAG>].txt
// e.g. CALD_TXSTA_DEV_20070805_134257_JULY07.txt
var namePattern = regexp.MustCompile(
	`^([A-Za-z]{4})_([A-Za-z]{4,10})_([A-Za-z]{3,4})_([0-9]{8})` +
		`(?:_([0-9]{6}))?(?:_(\w+))?\.txt$`)

// Name holds the parsed components of a transport file name.
type Name struct {
	Tenant   string // 4-character tenant designation
	Template string // template tag, e.g. TXSTA
	Env      string // target environment, e.g. DEV
	Date     string // transmission date YYYYMMDD
	Time     string // optional time stamp HHMISS
	Tag      string // optional custom tag
}

// ParseName parses a transport file name into its components.
// Returns false if the name does not follow the documented layout.
func ParseName(filename string) (Name, bool) {
	m := namePattern.FindStringSubmatch(filename)
	if m == nil {
		return Name{}, false
	}
	return Name{
		Tenant:   m[1],
		Template: m[2],
		Env:      m[3],
		Date:     m[4],
		Time:     m[5],
		Tag:      m[6],
	}, true
}

// MatchName reports whether filename follows the documented layout.
func MatchName(filename string) bool {
	return namePattern.MatchString(filename)
}

// Row is a single data line mapped against the template header.
type Row struct {
	Line      int               // 1-based line number in the file
	Fields    []string          // raw tab-split fields in file order
	Values    map[string]string // header column -> value ("" when the line is short)
	Remainder []string          // fields beyond the declared header
}

// Value returns the value for a header column. Unknown columns yield "".
func (r Row) Value(column string) string {
	return r.Values[column]
}

// KeyTuple joins the first width fields into a composite key.
// Short rows are padded with empty components.
func (r Row) KeyTuple(width int) string {
	parts := make([]string, width)
	for i := 0; i < width && i < len(r.Fields); i++ {
		parts[i] = r.Fields[i]
	}
	return strings.Join(parts, "\x1f")
}

// File is a loaded export file with its rows parsed against a header.
type File struct {
	Path     string
	Name     string // base name
	Template string // template tag the file was discovered under
	Header   []string
	Raw      []byte
	Lines    []string
	Rows     []Row

	columns map[string]bool
}

// HasColumn reports whether the header declares the column.
func (f *File) HasColumn(column string) bool {
	return f.columns[column]
}

// ValidUTF8 reports whether the raw content decodes as UTF-8.
func (f *File) ValidUTF8() bool {
	return utf8.Valid(f.Raw)
}

// Parse builds a File from raw content and a template header.
// Each line becomes one Row; fields beyond the header collect into the
// row's Remainder, missing trailing fields map to "".
func Parse(path, template string, header []string, raw []byte) *File {
	f := &File{
		Path:     path,
		Name:     filepath.Base(path),
		Template: template,
		Header:   header,
		Raw:      raw,
		columns:  make(map[string]bool, len(header)),
	}
	for _, col := range header {
		f.columns[col] = true
	}

	content := strings.TrimSuffix(string(raw), "\n")
	content = strings.TrimSuffix(content, "\r")
	if content == "" {
		return f
	}
	f.Lines = splitLines(content)

	for i, line := range f.Lines {
		fields := strings.Split(line, "\t")
		row := Row{
			Line:   i + 1,
			Fields: fields,
			Values: make(map[string]string, len(header)),
		}
		for j, col := range header {
			if j < len(fields) {
				row.Values[col] = fields[j]
			} else {
				row.Values[col] = ""
			}
		}
		if len(fields) > len(header) {
			row.Remainder = fields[len(header):]
		}
		f.Rows = append(f.Rows, row)
	}
	return f
}

func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
