package preview

import (
	"bytes"
	"goQuickLookCSV/pkg/csvdoc"
	"goQuickLookCSV/pkg/utils"
	"testing"
)

func parse(t *testing.T, input string, cfg csvdoc.Config) (*csvdoc.Table, int) {
	t.Helper()
	tb, n, err := csvdoc.Parse(input, cfg)
	if err != nil {
		t.Fatalf("%v", err)
	}
	return tb, n
}

func TestShow(t *testing.T) {
	tb, _ := parse(t, "id,name,city\n1,alice,Oslo\n2,bob\n3,carol,Rome\n", csvdoc.Config{})
	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", Options{},
			"id | name | city\n1 | alice | Oslo\n2 | bob | \n3 | carol | Rome\n"},
		{"limit", Options{Limit: 1, Joiner: ","},
			"id,name,city\n1,alice,Oslo\n"},
		{"markFirst", Options{MarkFirst: true, Limit: 2, Joiner: " "},
			"id name city\n*1 alice Oslo\n*2 bob \n"},
		{"columns", Options{Columns: []string{"city", "id"}, MarkFirst: true, Limit: 1, Joiner: ";"},
			"city;id\nOslo;*1\n"},
		{"unknownColumn", Options{Columns: []string{"name", "zip"}, Limit: 1, Joiner: ";"},
			"name;zip\nalice;\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := Show(&out, tb, tt.opts); err != nil {
				t.Errorf("%v", err)
				return
			}
			if err := utils.GetGotExpErr("output", out.String(), tt.want); err != nil {
				t.Errorf("%v", err)
			}
		})
	}
}

func TestShow_orderedRows(t *testing.T) {
	tb, _ := parse(t, "id,name\n1,carol\n2,alice\n3,bob\n", csvdoc.Config{})
	rows, err := tb.OrderBy([]string{"name"}, []string{"string"}, csvdoc.COrderByAsc)
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	var out bytes.Buffer
	if err := Show(&out, tb, Options{Rows: rows, Joiner: ","}); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("output", out.String(), "id,name\n2,alice\n3,bob\n1,carol\n"); err != nil {
		t.Errorf("%v", err)
	}
}

func TestSummary(t *testing.T) {
	tb, n := parse(t, "a;b\n1;2\n3;4\n", csvdoc.Config{AutoDetect: true})
	if err := utils.GetGotExpErr("summary", Summary(tb, n), "2 rows, 2 columns, separator: semicolon"); err != nil {
		t.Errorf("%v", err)
	}
}

func TestShowRecord(t *testing.T) {
	tb, _ := parse(t, "a\tb\n1\t2\t3\n", csvdoc.Config{Separator: "\t"})
	var out bytes.Buffer
	if err := ShowRecord(&out, tb, 0); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("record", out.String(), "a: 1\nb: 2\n3: 3\n"); err != nil {
		t.Errorf("%v", err)
	}
	if err := ShowRecord(&out, tb, 4); err == nil {
		t.Errorf("expected an out of range error")
	}
}
