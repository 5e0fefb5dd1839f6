package conv

import (
	"reflect"
	"testing"
)

func TestToFloat64(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"float64", 3.14, 3.14, true},
		{"float32", float32(2.5), 2.5, true},
		{"int", 7, 7, true},
		{"int64", int64(8), 8, true},
		{"int32", int32(9), 9, true},
		{"bool true", true, 1.0, true},
		{"bool false", false, 0.0, true},
		{"string", "3.14", 0, false},
		{"nil", nil, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ToFloat64(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ToFloat64(%v) = %v, %v, want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestConvertSlice(t *testing.T) {
	got := ConvertSlice([]any{"a", 1, "b"}, func(v any) (string, bool) {
		s, ok := v.(string)
		return s, ok
	})
	if !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("ConvertSlice() = %v, want [a b]", got)
	}
	if ConvertSlice[int, int](nil, nil) != nil {
		t.Error("ConvertSlice(nil) should be nil")
	}
}

func TestSliceAnyToString(t *testing.T) {
	got := SliceAnyToString([]any{"x", 3, 4.0, true})
	want := []string{"x", "3", "4", "1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SliceAnyToString() = %v, want %v", got, want)
	}
	if SliceAnyToString("not a slice") != nil {
		t.Error("non-slice input should yield nil")
	}
}

func TestConfigGet(t *testing.T) {
	m := map[string]any{"expr": "a + b", "n": 3}

	if got := ConfigGet(m, "expr", ""); got != "a + b" {
		t.Errorf("ConfigGet(expr) = %q", got)
	}
	if got := ConfigGet(m, "missing", "dflt"); got != "dflt" {
		t.Errorf("ConfigGet(missing) = %q, want default", got)
	}
	// 类型不符时回退默认值
	if got := ConfigGet(m, "n", "dflt"); got != "dflt" {
		t.Errorf("ConfigGet(n as string) = %q, want default", got)
	}
	if got := ConfigGet[string](nil, "k", "dflt"); got != "dflt" {
		t.Errorf("ConfigGet(nil map) = %q, want default", got)
	}
}

func TestConfigGetInt64(t *testing.T) {
	m := map[string]any{"a": 3, "b": int64(4), "c": 5.0, "d": "x"}
	for key, want := range map[string]int64{"a": 3, "b": 4, "c": 5, "d": -1, "missing": -1} {
		if got := ConfigGetInt64(m, key, -1); got != want {
			t.Errorf("ConfigGetInt64(%s) = %d, want %d", key, got, want)
		}
	}
}

func TestConfigGetFloat64(t *testing.T) {
	m := map[string]any{"f": 0.4, "i": 2, "s": "x"}
	for key, want := range map[string]float64{"f": 0.4, "i": 2, "s": -1, "missing": -1} {
		if got := ConfigGetFloat64(m, key, -1); got != want {
			t.Errorf("ConfigGetFloat64(%s) = %v, want %v", key, got, want)
		}
	}
}
