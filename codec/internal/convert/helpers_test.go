package convert

import (
	"math"
	"testing"
)

func TestSafeMulInt(t *testing.T) {
	tests := []struct {
		a, b   int
		result int
		ok     bool
	}{
		{0, 0, 0, true},
		{16, 50, 800, true},
		{8, 28, 224, true},
		{math.MaxInt, 2, 0, false},
		{-1, 2, 0, false},
	}
	for _, tc := range tests {
		result, ok := SafeMulInt(tc.a, tc.b)
		if ok != tc.ok {
			t.Errorf("SafeMulInt(%d, %d): got ok=%v, want %v", tc.a, tc.b, ok, tc.ok)
		}
		if ok && result != tc.result {
			t.Errorf("SafeMulInt(%d, %d): got %d, want %d", tc.a, tc.b, result, tc.result)
		}
	}
}

func TestSafeAddInt(t *testing.T) {
	if v, ok := SafeAddInt(2200, 8); !ok || v != 2208 {
		t.Errorf("SafeAddInt(2200, 8) = %d, %v", v, ok)
	}
	if _, ok := SafeAddInt(math.MaxInt, 1); ok {
		t.Error("SafeAddInt should detect overflow")
	}
}

func TestTypeName(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		expect string
	}{
		{"nil", nil, "nil"},
		{"int", 42, "int"},
		{"slice", []byte{1}, "[]uint8"},
		{"map", map[string]any{"a": 1}, "map[string]interface {}"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeName(tc.value); got != tc.expect {
				t.Errorf("TypeName(%v) = %q, want %q", tc.value, got, tc.expect)
			}
		})
	}
}
