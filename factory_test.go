package fluent

import (
	"errors"
	"strings"
	"testing"
)

type shape interface {
	Name() string
}

type circle struct{}

func (circle) Name() string { return "circle" }

type square struct{ side int }

func (s square) Name() string { return "square" }

func TestFactory_Create(t *testing.T) {
	t.Run("creates from registered producer", func(t *testing.T) {
		f := FactoryFrom[shape]("shapes").
			Register("circle", func() shape { return circle{} }).
			Register("square", func() shape { return square{side: 2} })

		got, err := f.Create("square")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name() != "square" {
			t.Errorf("Create() = %q, want %q", got.Name(), "square")
		}
	})

	t.Run("can be queried repeatedly with different keys", func(t *testing.T) {
		f := FactoryFrom[int]("numbers").
			RegisterValue("one", 1).
			RegisterValue("two", 2)

		for key, want := range map[string]int{"one": 1, "two": 2} {
			for i := 0; i < 2; i++ {
				got, err := f.Create(key)
				if err != nil {
					t.Fatalf("Create(%q) unexpected error: %v", key, err)
				}
				if got != want {
					t.Errorf("Create(%q) = %d, want %d", key, got, want)
				}
			}
		}
	})

	t.Run("calls producer on every Create", func(t *testing.T) {
		calls := 0
		f := FactoryFrom[int]("k").Register("k", func() int { calls++; return calls })

		first, _ := f.Create("k")
		second, _ := f.Create("k")
		if first != 1 || second != 2 {
			t.Errorf("Create() = %d, %d; want 1, 2", first, second)
		}
	})

	t.Run("unknown key names the key", func(t *testing.T) {
		f := FactoryFrom[shape]("shapes").Register("circle", func() shape { return circle{} })

		_, err := f.Create("triangle")
		if !errors.Is(err, ErrUnknownKey) {
			t.Fatalf("Create() error = %v, want ErrUnknownKey", err)
		}
		if !strings.Contains(err.Error(), "triangle") {
			t.Errorf("error %q does not name the key", err.Error())
		}
	})

	t.Run("zero value key is a normal key", func(t *testing.T) {
		f := FactoryFrom[string](1).RegisterValue(0, "zero")

		got, err := f.Create(0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "zero" {
			t.Errorf("Create(0) = %q, want %q", got, "zero")
		}
	})
}

func TestFactory_Register(t *testing.T) {
	t.Run("later registration overwrites earlier one", func(t *testing.T) {
		f := FactoryFrom[string]("k").
			RegisterValue("k", "first").
			RegisterValue("k", "second")

		got, err := f.Create("k")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "second" {
			t.Errorf("Create() = %q, want %q", got, "second")
		}
		if f.Len() != 1 {
			t.Errorf("Len() = %d, want 1", f.Len())
		}
	})

	t.Run("dispatch builders keep the first registration instead", func(t *testing.T) {
		got, err := MatcherOf[string]("k").
			When("k", "first").
			When("k", "second").
			Apply()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "first" {
			t.Errorf("Apply() = %q, want %q", got, "first")
		}
	})

	t.Run("conditional registration applies when predicate holds", func(t *testing.T) {
		f := FactoryFrom[string]("k").
			RegisterIf(func(k string) bool { return strings.HasPrefix(k, "x-") }, "x-a", func() string { return "a" })

		if !f.Has("x-a") {
			t.Fatal("expected x-a to be registered")
		}
		got, err := f.Create("x-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "a" {
			t.Errorf("Create() = %q, want %q", got, "a")
		}
	})

	t.Run("conditional registration is a no-op when predicate fails", func(t *testing.T) {
		f := FactoryFrom[string]("k").
			RegisterIf(Never[string](), "b", func() string { return "b" })

		if f.Has("b") {
			t.Error("expected b to stay unregistered")
		}
		if _, err := f.Create("b"); !errors.Is(err, ErrUnknownKey) {
			t.Errorf("Create() error = %v, want ErrUnknownKey", err)
		}
	})

	t.Run("rejected conditional registration keeps existing producer", func(t *testing.T) {
		f := FactoryFrom[string]("k").
			RegisterValue("k", "kept").
			RegisterIf(Never[string](), "k", func() string { return "dropped" })

		got, _ := f.Create("k")
		if got != "kept" {
			t.Errorf("Create() = %q, want %q", got, "kept")
		}
	})
}

func TestFactory_NilMarker(t *testing.T) {
	var marker *string
	f := FactoryFrom[int](marker).Register(nil, func() int { return 1 })

	if !errors.Is(f.Err(), ErrNilSubject) {
		t.Errorf("Err() = %v, want ErrNilSubject", f.Err())
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d, want 0", f.Len())
	}
	if _, err := f.Create(nil); !errors.Is(err, ErrNilSubject) {
		t.Errorf("Create() error = %v, want ErrNilSubject", err)
	}
}

func TestFactory_Marker(t *testing.T) {
	f := FactoryFrom[int]("shapes")
	if f.Marker() != "shapes" {
		t.Errorf("Marker() = %q, want %q", f.Marker(), "shapes")
	}
}

func TestFactory_UnhashableKey(t *testing.T) {
	f := FactoryFrom[string, any]("mixed").
		RegisterValue([]int{1}, "slice").
		RegisterValue(1, "one")

	if f.Len() != 1 {
		t.Errorf("Len() = %d, want 1", f.Len())
	}
	if f.Has([]int{1}) {
		t.Error("Has() = true for an uncomparable key")
	}
	if _, err := f.Create([]int{1}); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Create() error = %v, want ErrUnknownKey", err)
	}
	if got, err := f.Create(1); err != nil || got != "one" {
		t.Errorf("Create(1) = %q, %v, want %q", got, err, "one")
	}
}
