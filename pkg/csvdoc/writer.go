package csvdoc

import (
	"encoding/csv"
	"io"

	"github.com/pkg/errors"
)

// Writer re-emits a parsed Table as CSV, quoting fields where needed.
type Writer struct {
	writer *csv.Writer
}

func NewWriter(w io.Writer, sep rune) *Writer {
	c := new(Writer)
	c.writer = csv.NewWriter(w)
	c.writer.Comma = sep
	return c
}

// WriteTable writes the column keys (when withHeader is set) followed by
// every row's fields in source order, then flushes.
func (c *Writer) WriteTable(t *Table, withHeader bool) error {
	if withHeader {
		if err := c.write(t.columnKeys); err != nil {
			return err
		}
	}
	for _, row := range t.rows {
		if err := c.write(row.fields); err != nil {
			return err
		}
	}
	c.flush()
	return errors.WithStack(c.writer.Error())
}

func (c *Writer) write(record []string) error {
	if err := c.writer.Write(record); err != nil {
		return errors.WithStack(err)
	}
	return nil
}

func (c *Writer) flush() {
	c.writer.Flush()
}
