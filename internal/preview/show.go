package preview

import (
	"fmt"
	"goQuickLookCSV/pkg/csvdoc"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const (
	cDefaultJoiner   = " | "
	cFirstColumnMark = "*"
)

type Options struct {
	// Columns selects and orders the printed keys. Empty means all keys.
	Columns []string
	// Joiner separates values on a line. Defaults to " | ".
	Joiner string
	// Limit caps the printed rows. Zero or less prints all rows.
	Limit int
	// MarkFirst prefixes values of the table's first column with "*".
	MarkFirst bool
	// Rows replaces the table's rows, e.g. with the result of Table.OrderBy.
	Rows []*csvdoc.Row
}

func (o Options) joiner() string {
	if o.Joiner == "" {
		return cDefaultJoiner
	}
	return o.Joiner
}

func (o Options) keys(t *csvdoc.Table) []string {
	if len(o.Columns) > 0 {
		return o.Columns
	}
	return t.ColumnKeys()
}

func (o Options) rows(t *csvdoc.Table) []*csvdoc.Row {
	if o.Rows != nil {
		return o.Rows
	}
	return t.Rows()
}

// Show writes the header line followed by one line per row.
func Show(w io.Writer, t *csvdoc.Table, opts Options) error {
	keys := opts.keys(t)
	if _, err := fmt.Fprintln(w, strings.Join(keys, opts.joiner())); err != nil {
		return errors.WithStack(err)
	}
	for i, row := range opts.rows(t) {
		if opts.Limit > 0 && i >= opts.Limit {
			break
		}
		if _, err := fmt.Fprintln(w, formatRow(t, row, keys, opts)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}

func formatRow(t *csvdoc.Table, row *csvdoc.Row, keys []string, opts Options) string {
	if !opts.MarkFirst {
		return t.JoinRow(row, keys, opts.joiner())
	}
	values := make([]string, len(keys))
	for i, key := range keys {
		v := t.ColumnForKey(row, key)
		if t.IsFirstColumn(key) {
			v = cFirstColumnMark + v
		}
		values[i] = v
	}
	return strings.Join(values, opts.joiner())
}

// Summary describes the table in one line.
func Summary(t *csvdoc.Table, rowCount int) string {
	return fmt.Sprintf("%d rows, %d columns, separator: %s",
		rowCount, len(t.ColumnKeys()), csvdoc.SeparatorName(t.Separator()))
}

// ShowRecord writes one row as "key: value" lines.
func ShowRecord(w io.Writer, t *csvdoc.Table, index int) error {
	row := t.Row(index)
	if row == nil {
		return errors.Errorf("row %d out of range (%d rows)", index, t.Len())
	}
	for _, key := range t.ColumnKeys() {
		if _, err := fmt.Fprintf(w, "%s: %s\n", key, t.ColumnForKey(row, key)); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
