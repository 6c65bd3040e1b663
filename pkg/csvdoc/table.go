package csvdoc

import (
	"strconv"
	"strings"
)

// Row is one parsed record. Values are addressed by column key.
type Row struct {
	fields  []string
	columns map[string]string
}

func newRow(columnKeys []string, fields []string) *Row {
	r := new(Row)
	r.fields = fields
	r.columns = make(map[string]string, len(columnKeys))
	// duplicate keys: the last position wins
	for i, key := range columnKeys {
		v := ""
		if i < len(fields) {
			v = fields[i]
		}
		r.columns[key] = v
	}
	return r
}

// Column returns the value stored under key, or "" if the row has no such key.
func (r *Row) Column(key string) string {
	if r == nil {
		return ""
	}
	return r.columns[key]
}

// Join returns the values of keys, in the given order, joined by sep.
func (r *Row) Join(keys []string, sep string) string {
	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = r.Column(key)
	}
	return strings.Join(values, sep)
}

// Fields returns the row's values in source order.
func (r *Row) Fields() []string {
	if r == nil {
		return nil
	}
	fields := make([]string, len(r.fields))
	copy(fields, r.fields)
	return fields
}

func (r *Row) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Table is the result of Parse. It is not modified after Parse returns,
// so it can be shared between goroutines.
type Table struct {
	separator  rune
	columnKeys []string
	rows       []*Row
}

func newTable(separator rune) *Table {
	t := new(Table)
	t.separator = separator
	t.columnKeys = make([]string, 0)
	t.rows = make([]*Row, 0)
	return t
}

func (t *Table) setHeader(fields []string) {
	t.columnKeys = append(t.columnKeys[:0], fields...)
}

// appendRecord adds positional keys for fields past the current column keys
// before storing the row, so no value is dropped.
func (t *Table) appendRecord(fields []string) {
	for len(t.columnKeys) < len(fields) {
		t.columnKeys = append(t.columnKeys, strconv.Itoa(len(t.columnKeys)+1))
	}
	t.rows = append(t.rows, newRow(t.columnKeys, fields))
}

func (t *Table) Separator() rune {
	return t.separator
}

// ColumnKeys returns the column keys in display order.
func (t *Table) ColumnKeys() []string {
	keys := make([]string, len(t.columnKeys))
	copy(keys, t.columnKeys)
	return keys
}

func (t *Table) Rows() []*Row {
	rows := make([]*Row, len(t.rows))
	copy(rows, t.rows)
	return rows
}

func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the i-th data row, or nil when i is out of range.
func (t *Table) Row(i int) *Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// ColumnForKey returns the value of key in row. A missing key is not an
// error: rows parsed before an overflow key was added simply do not have it.
func (t *Table) ColumnForKey(row *Row, key string) string {
	return row.Column(key)
}

func (t *Table) JoinRow(row *Row, keys []string, sep string) string {
	return row.Join(keys, sep)
}

// IsFirstColumn reports whether key is the leading column key.
func (t *Table) IsFirstColumn(key string) bool {
	if len(t.columnKeys) == 0 {
		return false
	}
	return t.columnKeys[0] == key
}

// SeparatorName returns a readable name for the common separators.
func SeparatorName(sep rune) string {
	switch sep {
	case ',':
		return "comma"
	case ';':
		return "semicolon"
	case '\t':
		return "tab"
	case '|':
		return "pipe"
	default:
		return string(sep)
	}
}
