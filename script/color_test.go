package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/32bitkid/legend/screen"
)

func TestNewColor(t *testing.T) {
	cases := []struct {
		args     []Value
		expected screen.Color
	}{
		{nil, screen.Color{R: 0, G: 0, B: 0, A: 255}},
		{[]Value{Integer(10)}, screen.Color{R: 10, G: 0, B: 0, A: 255}},
		{[]Value{Integer(1), Integer(2), Integer(3)}, screen.Color{R: 1, G: 2, B: 3, A: 255}},
		{[]Value{Integer(1), Integer(2), Integer(3), Integer(4)}, screen.Color{R: 1, G: 2, B: 3, A: 4}},
		{[]Value{Integer(256 + 7)}, screen.Color{R: 7, G: 0, B: 0, A: 255}},
	}

	for _, tc := range cases {
		c, err := NewColor(tc.args)
		if err != nil {
			t.Fatal(err)
		}
		if c.Color != tc.expected {
			t.Errorf("NewColor(%v) = %s, expected %s", tc.args, c.Color, tc.expected)
		}
	}

	if _, err := NewColor([]Value{Float(1.5)}); !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType, got %v", err)
	}
	if _, err := NewColor(make([]Value, 5)); !errors.Is(err, ErrArity) {
		t.Errorf("expected ErrArity, got %v", err)
	}
}

func TestColorMembers(t *testing.T) {
	c, _ := NewColor([]Value{Integer(1), Integer(2), Integer(3)})

	for key, want := range map[string]Integer{"r": 1, "g": 2, "b": 3, "a": 255} {
		v, err := c.Get(key)
		if err != nil {
			t.Fatal(err)
		}
		if v != want {
			t.Errorf("%s = %v, expected %v", key, v, want)
		}
	}

	if err := c.Set("g", Integer(99)); err != nil {
		t.Fatal(err)
	}
	if c.G != 99 {
		t.Errorf("expected(99) != actual(%d)", c.G)
	}

	_, err := c.Get("hue")
	if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), "index not found") {
		t.Errorf("unexpected error %v", err)
	}

	err = c.Set("blend", Integer(1))
	if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), "can not set") {
		t.Errorf("unexpected error %v", err)
	}

	if err := c.Set("r", String("red")); !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType, got %v", err)
	}
}

func TestColorBlend(t *testing.T) {
	base, _ := NewColor([]Value{Integer(0), Integer(0), Integer(0)})
	white, _ := NewColor([]Value{Integer(200), Integer(100), Integer(50), Integer(255)})

	v, err := base.Call("blend", []Value{white})
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*ColorObject).Color; got != white.Color {
		t.Errorf("blend = %s", got)
	}

	m, err := base.Get("alpha_blend")
	if err != nil {
		t.Fatal(err)
	}
	method, ok := m.(Method)
	if !ok || method.Name != "alpha_blend" {
		t.Fatalf("expected bound method, got %v", m)
	}
	v, err = method.Invoke([]Value{white, Float(0.5)})
	if err != nil {
		t.Fatal(err)
	}
	if got := v.(*ColorObject).Color; got != (screen.Color{R: 100, G: 50, B: 25, A: 255}) {
		t.Errorf("alpha_blend = %s", got)
	}

	if base.Color != (screen.Color{R: 0, G: 0, B: 0, A: 255}) {
		t.Error("blend mutated the receiver")
	}
}

func TestColorCallErrors(t *testing.T) {
	c, _ := NewColor(nil)

	_, err := c.Call("alpha_blend", []Value{c})
	if !errors.Is(err, ErrArity) || !strings.Contains(err.Error(), "expected 2 parameters") {
		t.Errorf("unexpected error %v", err)
	}

	_, err = c.Call("blend", []Value{Integer(1)})
	if !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType, got %v", err)
	}

	_, err = c.Call("mix", nil)
	if !errors.Is(err, ErrNotFound) || !strings.Contains(err.Error(), "operation not found") {
		t.Errorf("unexpected error %v", err)
	}
}

func TestErrorPosition(t *testing.T) {
	c, _ := NewColor(nil)
	_, err := c.Get("x")
	err = At(err, Position{Line: 3, Column: 14})

	var re *RuntimeError
	if !errors.As(err, &re) {
		t.Fatalf("expected RuntimeError, got %T", err)
	}
	if re.Position.Line != 3 || !strings.HasSuffix(re.Error(), "at 3:14") {
		t.Errorf("unexpected error %q", re.Error())
	}

	At(err, Position{Line: 9})
	if re.Position.Line != 3 {
		t.Error("At replaced an existing position")
	}
}
