package script

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
	lua "github.com/yuin/gopher-lua"
)

// toGo converts a Lua value to a JSON compatible Go value. Tables with the
// keys 1..n become slices, any other table a map. Functions, userdata and
// cyclic references become nil.
func toGo(lv lua.LValue) any {
	return toGoSeen(lv, make(map[*lua.LTable]bool))
}

func toGoSeen(lv lua.LValue, seen map[*lua.LTable]bool) any {
	switch v := lv.(type) {
	case lua.LBool:
		return bool(v)
	case lua.LNumber:
		f := float64(v)
		if f == float64(int64(f)) {
			return int64(f)
		}
		return f
	case lua.LString:
		return string(v)
	case *lua.LTable:
		if seen[v] {
			return nil
		}
		seen[v] = true
		defer delete(seen, v)
		return tableToGo(v, seen)
	default:
		return nil
	}
}

func tableToGo(t *lua.LTable, seen map[*lua.LTable]bool) any {
	if n := arrayLen(t); n > 0 {
		out := make([]any, n)
		for i := 1; i <= n; i++ {
			out[i-1] = toGoSeen(t.RawGetInt(i), seen)
		}
		return out
	}

	out := make(map[string]any)
	t.ForEach(func(k, v lua.LValue) {
		var key string
		switch kv := k.(type) {
		case lua.LString:
			key = string(kv)
		case lua.LNumber:
			key = strconv.FormatFloat(float64(kv), 'f', -1, 64)
		default:
			return
		}
		out[key] = toGoSeen(v, seen)
	})
	return out
}

// arrayLen returns n when the keys of t are exactly 1..n, zero otherwise.
func arrayLen(t *lua.LTable) int {
	count, maxN := 0, 0
	isArray := true
	t.ForEach(func(k, _ lua.LValue) {
		count++
		kn, ok := k.(lua.LNumber)
		if !ok || float64(kn) != float64(int(kn)) || int(kn) < 1 {
			isArray = false
			return
		}
		if int(kn) > maxN {
			maxN = int(kn)
		}
	})
	if !isArray || count != maxN {
		return 0
	}
	return maxN
}

// conform reshapes a value produced by toGo to fit t. An empty Lua table
// is indistinguishable from an empty list, so where t expects a slice or
// an array an empty map becomes an empty slice.
func conform(v any, t reflect.Type) any {
	if t == nil || v == nil {
		return v
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Slice, reflect.Array:
		switch vv := v.(type) {
		case map[string]any:
			if len(vv) == 0 {
				return []any{}
			}
		case []any:
			for i := range vv {
				vv[i] = conform(vv[i], t.Elem())
			}
		}
	case reflect.Map:
		if m, ok := v.(map[string]any); ok {
			for k, item := range m {
				m[k] = conform(item, t.Elem())
			}
		}
	case reflect.Struct:
		if m, ok := v.(map[string]any); ok {
			fields := jsonFields(t)
			for k, item := range m {
				if ft, ok := lookupField(fields, k); ok {
					m[k] = conform(item, ft)
				}
			}
		}
	}
	return v
}

// jsonFields maps the JSON keys of struct t to their field types, following
// embedded structs the way encoding/json does.
func jsonFields(t reflect.Type) map[string]reflect.Type {
	out := make(map[string]reflect.Type)
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("json")
		if tag == "-" {
			continue
		}
		name, _, _ := strings.Cut(tag, ",")

		ft := f.Type
		if f.Anonymous && name == "" {
			for ft.Kind() == reflect.Pointer {
				ft = ft.Elem()
			}
			if ft.Kind() == reflect.Struct {
				for k, v := range jsonFields(ft) {
					if _, ok := out[k]; !ok {
						out[k] = v
					}
				}
				continue
			}
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		out[name] = ft
	}
	return out
}

// lookupField matches key exactly first, then case-insensitively like
// encoding/json.
func lookupField(fields map[string]reflect.Type, key string) (reflect.Type, bool) {
	if ft, ok := fields[key]; ok {
		return ft, true
	}
	for name, ft := range fields {
		if strings.EqualFold(name, key) {
			return ft, true
		}
	}
	return nil, false
}

// toLua converts v to a Lua value through its JSON form, so struct tags
// decide the table keys.
func toLua(L *lua.LState, v any) (lua.LValue, error) {
	if v == nil {
		return lua.LNil, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return lua.LNil, err
	}
	return fromJSON(L, gjson.ParseBytes(data)), nil
}

func fromJSON(L *lua.LState, r gjson.Result) lua.LValue {
	switch r.Type {
	case gjson.False:
		return lua.LFalse
	case gjson.True:
		return lua.LTrue
	case gjson.Number:
		return lua.LNumber(r.Num)
	case gjson.String:
		return lua.LString(r.Str)
	case gjson.JSON:
		t := L.NewTable()
		if r.IsArray() {
			i := 1
			r.ForEach(func(_, v gjson.Result) bool {
				t.RawSetInt(i, fromJSON(L, v))
				i++
				return true
			})
			return t
		}
		r.ForEach(func(k, v gjson.Result) bool {
			t.RawSetString(k.Str, fromJSON(L, v))
			return true
		})
		return t
	default:
		return lua.LNil
	}
}
