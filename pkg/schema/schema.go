// Package schema declares per-template validation rule sets.
//
// A Template is pure configuration: lists of column names grouped by the
// constraint that applies to them. Adding support for a new ODI/XDL template
// means registering a new Template, never touching shared check logic.
package schema

// Template is the declarative rule set for one ODI/XDL template.
type Template struct {
	// Tag is the template designation used for file discovery, e.g. "TXSTA".
	Tag string

	// Description is a short human-readable summary.
	Description string

	// PrimaryKey lists the columns whose combined values must be filled and
	// unique across all rows.
	PrimaryKey []string

	// Required lists columns that must be filled in every row.
	Required []string

	// AnyOf lists columns of which at least one must be filled in every
	// row (TXTA: an assignment names a payee, a position or a title).
	AnyOf []string

	// Dependents maps a column to another column that must be filled
	// whenever the first one is, e.g. PAYEEID -> PAYEETYPE.
	Dependents map[string]string

	// Numbers lists numeric columns. Each may have a UNITTYPEFOR<name>
	// indicator column that must be filled together with it.
	Numbers []string

	// Dates lists columns holding MM/DD/YYYY dates.
	Dates []string

	// Booleans lists columns whose domain is "", "0" or "1".
	Booleans []string

	// UniqueExtra extends the uniqueness tuple beyond the primary key
	// (TXTA: one transaction line may carry several assignments, so the
	// assignment columns take part in the key).
	UniqueExtra []string

	// PairTag names a companion template whose files must pair with this
	// one by filename, e.g. TXSTA pairs with TXTA.
	PairTag string

	// PairKeyWidth is the number of leading columns forming the join key
	// between paired files.
	PairKeyWidth int
}

// UniqueKey returns the columns the uniqueness check is computed over.
func (t Template) UniqueKey() []string {
	if len(t.UniqueExtra) == 0 {
		return t.PrimaryKey
	}
	key := make([]string, 0, len(t.PrimaryKey)+len(t.UniqueExtra))
	key = append(key, t.PrimaryKey...)
	key = append(key, t.UniqueExtra...)
	return key
}
