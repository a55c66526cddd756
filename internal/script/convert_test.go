package script

import (
	"reflect"
	"testing"

	lua "github.com/yuin/gopher-lua"
)

func TestToGo(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	array := L.NewTable()
	array.RawSetInt(1, lua.LString("a"))
	array.RawSetInt(2, lua.LNumber(2))

	sparse := L.NewTable()
	sparse.RawSetInt(1, lua.LString("a"))
	sparse.RawSetInt(3, lua.LString("c"))

	object := L.NewTable()
	object.RawSetString("name", lua.LString("x"))
	object.RawSetString("list", array)

	cyclic := L.NewTable()
	cyclic.RawSetString("self", cyclic)

	tests := []struct {
		name string
		in   lua.LValue
		want any
	}{
		{"nil", lua.LNil, nil},
		{"bool", lua.LTrue, true},
		{"integer", lua.LNumber(42), int64(42)},
		{"float", lua.LNumber(1.5), 1.5},
		{"string", lua.LString("s"), "s"},
		{"empty table", L.NewTable(), map[string]any{}},
		{"array", array, []any{"a", int64(2)}},
		{"sparse array", sparse, map[string]any{"1": "a", "3": "c"}},
		{"object", object, map[string]any{"name": "x", "list": []any{"a", int64(2)}}},
		{"cycle", cyclic, map[string]any{"self": nil}},
		{"function", L.NewFunction(func(*lua.LState) int { return 0 }), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toGo(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("toGo() = %#v, want %#v", got, tt.want)
			}
		})
	}
}

func TestToLua(t *testing.T) {
	L := lua.NewState()
	defer L.Close()

	type detail struct {
		Key   string   `json:"key"`
		Tags  []string `json:"tags"`
		Count int      `json:"count"`
	}

	lv, err := toLua(L, detail{Key: "k", Tags: []string{"a", "b"}, Count: 3})
	if err != nil {
		t.Fatalf("toLua() error = %v", err)
	}
	tbl, ok := lv.(*lua.LTable)
	if !ok {
		t.Fatalf("toLua() = %T, want table", lv)
	}
	if got := tbl.RawGetString("key"); got != lua.LString("k") {
		t.Errorf("key = %v, want k", got)
	}
	if got := tbl.RawGetString("count"); got != lua.LNumber(3) {
		t.Errorf("count = %v, want 3", got)
	}
	tags, ok := tbl.RawGetString("tags").(*lua.LTable)
	if !ok || tags.Len() != 2 || tags.RawGetInt(2) != lua.LString("b") {
		t.Errorf("tags = %v", tbl.RawGetString("tags"))
	}

	if lv, err := toLua(L, nil); err != nil || lv != lua.LNil {
		t.Errorf("toLua(nil) = %v, %v", lv, err)
	}
	if _, err := toLua(L, func() {}); err == nil {
		t.Error("toLua() accepted a function")
	}
}

type conformInner struct {
	Tags []string `json:"tags"`
}

type conformEmbedded struct {
	Extra []int `json:"extra"`
}

type conformOuter struct {
	conformEmbedded

	Items []conformInner       `json:"items"`
	Named map[string][]int     `json:"named"`
	Ptr   *conformInner        `json:"ptr"`
	Any   any                  `json:"any"`
	Skip  []string             `json:"-"`
	Fixed [2]int               `json:"fixed,omitempty"`
	Plain map[string]string    `json:"plain"`
	Deep  map[string]*[]string `json:"deep"`
}

func TestConform(t *testing.T) {
	outer := reflect.TypeOf(conformOuter{})
	empty := func() map[string]any { return map[string]any{} }

	tests := []struct {
		name string
		in   any
		typ  reflect.Type
		want any
	}{
		{"nil type", empty(), nil, map[string]any{}},
		{"nil value", nil, outer, nil},
		{"slice", empty(), reflect.TypeOf([]string(nil)), []any{}},
		{"pointer to slice", empty(), reflect.TypeOf(&[]int{}), []any{}},
		{"non-empty table for a slice", map[string]any{"a": int64(1)}, reflect.TypeOf([]int(nil)), map[string]any{"a": int64(1)}},
		{"struct field", map[string]any{"items": empty()}, outer, map[string]any{"items": []any{}}},
		{"field matched case-insensitively", map[string]any{"ITEMS": empty()}, outer, map[string]any{"ITEMS": []any{}}},
		{
			"slice of structs",
			map[string]any{"items": []any{map[string]any{"tags": empty()}}},
			outer,
			map[string]any{"items": []any{map[string]any{"tags": []any{}}}},
		},
		{"map values", map[string]any{"named": map[string]any{"a": empty()}}, outer, map[string]any{"named": map[string]any{"a": []any{}}}},
		{"pointer field", map[string]any{"ptr": map[string]any{"tags": empty()}}, outer, map[string]any{"ptr": map[string]any{"tags": []any{}}}},
		{"embedded field", map[string]any{"extra": empty()}, outer, map[string]any{"extra": []any{}}},
		{"array field", map[string]any{"fixed": empty()}, outer, map[string]any{"fixed": []any{}}},
		{"deep pointer", map[string]any{"deep": map[string]any{"x": empty()}}, outer, map[string]any{"deep": map[string]any{"x": []any{}}}},
		{"interface field kept", map[string]any{"any": empty()}, outer, map[string]any{"any": map[string]any{}}},
		{"map field kept", map[string]any{"plain": empty()}, outer, map[string]any{"plain": map[string]any{}}},
		{"ignored field kept", map[string]any{"Skip": empty()}, outer, map[string]any{"Skip": map[string]any{}}},
		{"unknown key kept", map[string]any{"other": empty()}, outer, map[string]any{"other": map[string]any{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := conform(tt.in, tt.typ); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("conform() = %#v, want %#v", got, tt.want)
			}
		})
	}
}
