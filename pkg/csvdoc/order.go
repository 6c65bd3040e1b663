package csvdoc

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

const (
	COrderByAsc  = 1
	COrderByDesc = -1
)

type orderRows struct {
	rows       []*Row
	keys       []string
	fieldTypes []string
	direction  int
}

func (ov orderRows) Len() int {
	return len(ov.rows)
}

func (ov orderRows) Swap(i, j int) {
	ov.rows[i], ov.rows[j] = ov.rows[j], ov.rows[i]
}

func (ov orderRows) Less(i, j int) bool {
	for k, fieldt := range ov.fieldTypes {
		c := compareValues(fieldt, ov.rows[i].Column(ov.keys[k]), ov.rows[j].Column(ov.keys[k]))
		if c != 0 {
			return c*ov.direction < 0
		}
	}
	return false
}

// compareValues compares a and b as fieldType. Values that do not parse
// compare as zero.
func compareValues(fieldType, a, b string) int {
	switch fieldType {
	case "int", "int8", "int16", "int32", "int64":
		r1, _ := strconv.ParseInt(a, 10, 64)
		r2, _ := strconv.ParseInt(b, 10, 64)
		return compareResult(r1 < r2, r1 > r2)
	case "uint", "uint8", "uint16", "uint32", "uint64":
		r1, _ := strconv.ParseUint(a, 10, 64)
		r2, _ := strconv.ParseUint(b, 10, 64)
		return compareResult(r1 < r2, r1 > r2)
	case "float32", "float64":
		r1, _ := strconv.ParseFloat(a, 64)
		r2, _ := strconv.ParseFloat(b, 64)
		return compareResult(r1 < r2, r1 > r2)
	case "bool":
		r1, _ := strconv.ParseBool(a)
		r2, _ := strconv.ParseBool(b)
		return compareResult(!r1 && r2, r1 && !r2)
	}
	return compareResult(a < b, a > b)
}

func compareResult(less, greater bool) int {
	if less {
		return -1
	}
	if greater {
		return 1
	}
	return 0
}

// OrderBy returns the rows sorted by keys, each compared as the matching
// entry of fieldTypes (string, int*, uint*, float32, float64 or bool).
// The table keeps its source order; equal rows keep their relative order.
func (t *Table) OrderBy(keys []string, fieldTypes []string, direction int) ([]*Row, error) {
	if len(keys) != len(fieldTypes) {
		return nil, errors.Errorf("length of keys=%d does not match that of fieldTypes=%d",
			len(keys), len(fieldTypes))
	}
	if direction != COrderByAsc && direction != COrderByDesc {
		return nil, errors.Errorf("direction must be %d or %d, got %d", COrderByAsc, COrderByDesc, direction)
	}
	known := make(map[string]bool, len(t.columnKeys))
	for _, key := range t.columnKeys {
		known[key] = true
	}
	for _, key := range keys {
		if !known[key] {
			return nil, errors.Errorf("col %s is not in the table", key)
		}
	}
	ov := orderRows{
		rows:       t.Rows(),
		keys:       keys,
		fieldTypes: fieldTypes,
		direction:  direction,
	}
	sort.Stable(ov)
	return ov.rows, nil
}
