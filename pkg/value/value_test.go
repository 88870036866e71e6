package value

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/prettydoc/pkg/doc"
	perrors "github.com/matzehuels/prettydoc/pkg/errors"
	"github.com/matzehuels/prettydoc/pkg/render"
)

var wide = render.Config{MaxWidth: 100, IndentWidth: 4}

func mustRender(t *testing.T, d *doc.Node, cfg render.Config) string {
	t.Helper()
	out, err := render.Render(d, cfg)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	return out
}

type Point struct {
	X, Y int
}

type User struct {
	Name     string `pprint:"name"`
	Password string `pprint:"-"`
	Age      int    `pprint:",omitempty"`
	internal int
}

type Empty struct{}

type Color int

func (c Color) String() string { return [...]string{"red", "green"}[c] }

type badge string

func (b badge) Doc() *doc.Node { return doc.Concat(doc.Text("<"), doc.Text(string(b)), doc.Text(">")) }

type link struct {
	Next *link
	V    int
}

func TestFrom(t *testing.T) {
	self := map[string]any{}
	self["self"] = self
	loop := &link{V: 1}
	loop.Next = loop

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, "nil"},
		{"int", 42, "42"},
		{"uint8", uint8(7), "7"},
		{"integral float", 1.0, "1"},
		{"float", 0.1, "0.1"},
		{"float32", float32(0.1), "0.1"},
		{"bool", true, "true"},
		{"string", `a"b`, `"a\"b"`},
		{"complex", complex(1, 2), "(1+2i)"},
		{"slice", []int{1, 2, 3}, "[1, 2, 3]"},
		{"empty slice", []int{}, "[]"},
		{"nil slice", []int(nil), "[]"},
		{"array", [2]bool{true, false}, "[true, false]"},
		{"string map sorted", map[string]int{"b": 2, "a": 1}, `{"a": 1, "b": 2}`},
		{"int map sorted numerically", map[int]string{10: "x", 9: "y"}, `{9: "y", 10: "x"}`},
		{"nil map", map[string]int(nil), "nil"},
		{"struct", Point{X: 1, Y: 2}, "Point{X: 1, Y: 2}"},
		{"pointer", &Point{X: 1, Y: 2}, "&Point{X: 1, Y: 2}"},
		{"nil pointer", (*Point)(nil), "nil"},
		{"tags", User{Name: "ann", Password: "secret", Age: 3, internal: 9}, `User{name: "ann", Age: 3}`},
		{"empty struct", Empty{}, "Empty{}"},
		{"anonymous struct", struct{ A int }{1}, "{A: 1}"},
		{"stringer", Color(1), "green"},
		{"documenter", badge("ok"), "<ok>"},
		{"error", errors.New("boom"), "boom"},
		{"interface slice", []any{1, "x", nil}, `[1, "x", nil]`},
		{"pointer cycle", loop, "&link{Next: <cycle>, V: 1}"},
		{"map cycle", self, `{"self": <cycle>}`},
		{"shared but acyclic", []*Point{{1, 2}, {1, 2}}, "[&Point{X: 1, Y: 2}, &Point{X: 1, Y: 2}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mustRender(t, From(tt.in), wide)
			if got != tt.want {
				t.Errorf("From(%#v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromBreaksNarrowValues(t *testing.T) {
	got := mustRender(t, From(map[string][]string{"names": {"alpha", "beta", "gamma"}}), render.Config{MaxWidth: 20, IndentWidth: 2})
	want := `{
  "names": [
    "alpha",
    "beta",
    "gamma"
  ]
}`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("From() mismatch (-want +got):\n%s", diff)
	}
}

func TestWithJustify(t *testing.T) {
	fib := []int{1, 1, 2, 3, 5, 8, 13, 21, 34, 55, 89, 144}
	got := mustRender(t, From(fib, WithJustify(20)), render.DefaultConfig())
	want := "[\n" +
		"    1, 1, 2, 3, 5,\n" +
		"    8, 13, 21, 34,\n" +
		"    55, 89, 144\n" +
		"]"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("From(WithJustify) mismatch (-want +got):\n%s", diff)
	}

	short := mustRender(t, From([]int{1, 2}, WithJustify(20)), render.DefaultConfig())
	if short != "[1, 2]" {
		t.Errorf("short list = %q, want flat", short)
	}
}

func TestFromJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"key order kept", `{"b": 1, "a": [1, 2.50, "x", null, true]}`, `{"b": 1, "a": [1, 2.5, "x", null, true]}`},
		{"empty containers", `{"o": {}, "l": []}`, `{"o": {}, "l": []}`},
		{"exponent", `1e2`, "100"},
		{"negative zero", `-0.0`, "-0.0"},
		{"big integer", `12345678901234567890`, "12345678901234567890"},
		{"string escapes", `"tab\there"`, `"tab\there"`},
		{"nested", `[[1], {"k": [2]}]`, `[[1], {"k": [2]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := FromJSON([]byte(tt.in))
			if err != nil {
				t.Fatalf("FromJSON() error: %v", err)
			}
			if got := mustRender(t, d, wide); got != tt.want {
				t.Errorf("FromJSON(%s) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromJSONErrors(t *testing.T) {
	for _, in := range []string{"", "   ", "[1, 2", "1 2", `{"a": 1}}`, `"open`} {
		if _, err := FromJSON([]byte(in)); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
			t.Errorf("FromJSON(%q) error = %v, want INVALID_INPUT", in, err)
		}
	}
}

func TestFromYAML(t *testing.T) {
	in := `
name: demo
version: 1.0
count: 3
tags: [a, b]
base: &b {x: 1}
copy: *b
enabled: yes
empty:
`
	d, err := FromYAML([]byte(in))
	if err != nil {
		t.Fatalf("FromYAML() error: %v", err)
	}
	want := `{"name": "demo", "version": 1.0, "count": 3, "tags": ["a", "b"], "base": {"x": 1}, "copy": {"x": 1}, "enabled": "yes", "empty": null}`
	if diff := cmp.Diff(want, mustRender(t, d, render.Config{MaxWidth: 200})); diff != "" {
		t.Errorf("FromYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestFromYAMLEdgeCases(t *testing.T) {
	d, err := FromYAML(nil)
	if err != nil {
		t.Fatalf("FromYAML(nil) error: %v", err)
	}
	if got := mustRender(t, d, wide); got != "null" {
		t.Errorf("FromYAML(nil) = %q, want null", got)
	}

	if _, err := FromYAML([]byte("a: [1, 2")); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("FromYAML(malformed) error = %v, want INVALID_INPUT", err)
	}
}

func TestFromTOML(t *testing.T) {
	in := `
title = "demo"
ratio = 3.0
born = 1979-05-27

[owner]
name = "tom"
langs = ["go", "rust"]

[[items]]
id = 1

[[items]]
id = 2
`
	d, err := FromTOML([]byte(in))
	if err != nil {
		t.Fatalf("FromTOML() error: %v", err)
	}
	want := `{"title": "demo", "ratio": 3.0, "born": 1979-05-27, "owner": {"name": "tom", "langs": ["go", "rust"]}, "items": [{"id": 1}, {"id": 2}]}`
	if diff := cmp.Diff(want, mustRender(t, d, render.Config{MaxWidth: 200})); diff != "" {
		t.Errorf("FromTOML() mismatch (-want +got):\n%s", diff)
	}

	if _, err := FromTOML([]byte("a = ")); !perrors.Is(err, perrors.ErrCodeInvalidInput) {
		t.Errorf("FromTOML(malformed) error = %v, want INVALID_INPUT", err)
	}
}
