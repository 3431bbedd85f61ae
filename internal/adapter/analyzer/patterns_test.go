package analyzer

import (
	"reflect"
	"testing"

	"codegraph/internal/domain"
)

func TestSplitTopLevel(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a, b", []string{"a", " b"}},
		{"Map<K, V> m, int n", []string{"Map<K, V> m", " int n"}},
		{"f(x, y), z", []string{"f(x, y)", " z"}},
		{"", []string{""}},
	}
	for _, tt := range tests {
		if got := splitTopLevel(tt.in, ','); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTopLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBraceRegion(t *testing.T) {
	body, start, ok := braceRegion("class A { int x; { nested } }", 0)
	if !ok || body != " int x; { nested } " {
		t.Errorf("body = %q, ok = %v", body, ok)
	}
	if start != 9 {
		t.Errorf("start = %d, want 9", start)
	}

	if _, _, ok := braceRegion("no braces", 0); ok {
		t.Error("ok = true for input without braces")
	}
	if _, _, ok := braceRegion("never { closes", 0); ok {
		t.Error("ok = true for unclosed region")
	}
}

func TestTypedParameter(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Parameter
	}{
		{"int x", domain.Parameter{Name: "x", TypeHint: "int"}},
		{"const char *name", domain.Parameter{Name: "name", TypeHint: "const char *"}},
		{"int count = 0", domain.Parameter{Name: "count", TypeHint: "int", Default: "0"}},
		{"char *", domain.Parameter{TypeHint: "char *"}},
		{"...", domain.Parameter{Name: "..."}},
	}
	for _, tt := range tests {
		got, ok := typedParameter(tt.in)
		if !ok || got != tt.want {
			t.Errorf("typedParameter(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	if _, ok := typedParameter("   "); ok {
		t.Error("ok = true for blank parameter")
	}
}

func TestLineOfOffset(t *testing.T) {
	content := "one\ntwo\nthree"
	if got := lineOfOffset(content, 0); got != 1 {
		t.Errorf("offset 0 line = %d, want 1", got)
	}
	if got := lineOfOffset(content, 5); got != 2 {
		t.Errorf("offset 5 line = %d, want 2", got)
	}
}
