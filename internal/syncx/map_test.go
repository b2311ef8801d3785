package syncx

import "testing"

func TestMapLoadOrStore(t *testing.T) {
	var m Map[string, int]

	if _, ok := m.Load("foo"); ok {
		t.Fatalf("m.Load(\"foo\"): expected no value")
	}

	actual, loaded := m.LoadOrStore("foo", 1)
	if e, g := false, loaded; e != g {
		t.Errorf("loaded: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, actual; e != g {
		t.Errorf("actual: expected '%v', got '%v'", e, g)
	}

	actual, loaded = m.LoadOrStore("foo", 2)
	if e, g := true, loaded; e != g {
		t.Errorf("loaded: expected '%v', got '%v'", e, g)
	}

	if e, g := 1, actual; e != g {
		t.Errorf("actual: expected '%v', got '%v'", e, g)
	}

	count := 0
	m.Range(func(key string, value int) bool {
		count++
		return true
	})

	if e, g := 1, count; e != g {
		t.Errorf("count: expected '%v', got '%v'", e, g)
	}

	m.Delete("foo")

	if _, ok := m.Load("foo"); ok {
		t.Errorf("m.Load(\"foo\"): expected no value after delete")
	}
}
