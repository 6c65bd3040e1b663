package csvdoc

import (
	"goQuickLookCSV/pkg/utils"
	"reflect"
	"testing"
)

func rowIDs(rows []*Row) []string {
	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.Column("id")
	}
	return ids
}

func TestTable_OrderBy(t *testing.T) {
	tb, _, err := Parse("id,score,name,ok\n1,10,carol,true\n2,9,alice,false\n3,10,bob,false\n4,-1,dave,true\n", Config{})
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	tests := []struct {
		name       string
		keys       []string
		fieldTypes []string
		direction  int
		want       []string
		wantErr    bool
	}{
		{"intAsc", []string{"score"}, []string{"int"}, COrderByAsc, []string{"4", "2", "1", "3"}, false},
		{"intDescStable", []string{"score"}, []string{"int"}, COrderByDesc, []string{"1", "3", "2", "4"}, false},
		{"string", []string{"name"}, []string{"string"}, COrderByAsc, []string{"2", "3", "1", "4"}, false},
		{"twoKeys", []string{"ok", "score"}, []string{"bool", "float64"}, COrderByAsc, []string{"2", "3", "4", "1"}, false},
		{"unknownKey", []string{"zip"}, []string{"int"}, COrderByAsc, nil, true},
		{"lengthMismatch", []string{"id"}, nil, COrderByAsc, nil, true},
		{"badDirection", []string{"id"}, []string{"int"}, 0, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := tb.OrderBy(tt.keys, tt.fieldTypes, tt.direction)
			if (err != nil) != tt.wantErr {
				t.Errorf("OrderBy error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got := rowIDs(rows); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("order got=%q expected=%q", got, tt.want)
			}
		})
	}
	if err := utils.GetGotExpErr("source order kept", tb.Row(0).Column("id"), "1"); err != nil {
		t.Errorf("%v", err)
	}
}

func TestRow_Scan(t *testing.T) {
	tb, _, err := Parse("id,name,price,active,count\n7,alice,2.5,true,300\n", Config{})
	if err != nil {
		t.Errorf("%v", err)
		return
	}
	row := tb.Row(0)

	var id int
	var name string
	var price float64
	var active bool
	var count uint16
	if err := row.Scan([]string{"id", "name", "price", "active", "count"},
		&id, &name, &price, &active, &count); err != nil {
		t.Errorf("%v", err)
		return
	}
	if err := utils.GetGotExpErr("id", id, 7); err != nil {
		t.Errorf("%v", err)
	}
	if err := utils.GetGotExpErr("name", name, "alice"); err != nil {
		t.Errorf("%v", err)
	}
	if err := utils.GetGotExpErr("price", price, 2.5); err != nil {
		t.Errorf("%v", err)
	}
	if err := utils.GetGotExpErr("active", active, true); err != nil {
		t.Errorf("%v", err)
	}
	if err := utils.GetGotExpErr("count", count, uint16(300)); err != nil {
		t.Errorf("%v", err)
	}

	var small int8
	if err := row.Scan([]string{"count"}, &small); err == nil {
		t.Errorf("expected an overflow error")
	}
	if err := row.Scan([]string{"name"}, &id); err == nil {
		t.Errorf("expected a parse error")
	}
	if err := row.Scan([]string{"id"}, id); err == nil {
		t.Errorf("expected a non pointer error")
	}
	if err := row.Scan([]string{"id", "name"}, &id); err == nil {
		t.Errorf("expected an argument count error")
	}
	var unsupported []string
	if err := row.Scan([]string{"id"}, &unsupported); err == nil {
		t.Errorf("expected an unsupported type error")
	}
}
