package event

import "testing"

func TestSameUserData(t *testing.T) {
	tests := []struct {
		name string
		a    any
		b    any
		want bool
	}{
		{"both nil", nil, nil, true},
		{"one nil", nil, "x", false},
		{"equal strings", "x", "x", true},
		{"different strings", "x", "y", false},
		{"equal ints", 3, 3, true},
		{"different types", 3, int64(3), false},
		{"uncomparable never matches", []int{1}, []int{1}, false},
		{"same pointer", &struct{}{}, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sameUserData(tt.a, tt.b); got != tt.want {
				t.Errorf("sameUserData(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSameUserData_SharedPointer(t *testing.T) {
	p := &struct{ n int }{1}
	if !sameUserData(p, p) {
		t.Error("expected identical pointers to match")
	}
	q := &struct{ n int }{1}
	if sameUserData(any(p), any(q)) {
		t.Error("expected distinct pointers not to match")
	}
}

func TestListener_Matches(t *testing.T) {
	var sink any
	cbA := func(ev *Event, userData any) {}
	cbB := func(ev *Event, userData any) { sink = ev }
	_ = sink

	l := newListener(cbA, "data")

	if !l.matches(cbA, "data") {
		t.Error("expected matching pair to match")
	}
	if l.matches(cbB, "data") {
		t.Error("expected different callback not to match")
	}
	if l.matches(cbA, "other") {
		t.Error("expected different userData not to match")
	}
}

func TestListener_Describe(t *testing.T) {
	cb := func(ev *Event, userData any) {}

	if got := newListener(cb, nil).describe(); got != "unlabeled listener" {
		t.Errorf("expected placeholder description, got %q", got)
	}
	if got := newListener(cb, nil, WithLabel("audit")).describe(); got != "audit" {
		t.Errorf("expected label, got %q", got)
	}
}

func TestGroup_RemoveKeepsOrder(t *testing.T) {
	cb := func(ev *Event, userData any) {}
	g := &group{typ: "t"}
	for i := 0; i < 3; i++ {
		g.listeners = append(g.listeners, newListener(cb, i))
	}

	if !g.remove(cb, 1) {
		t.Fatal("expected remove to find the middle listener")
	}
	if len(g.listeners) != 2 {
		t.Fatalf("expected 2 listeners, got %d", len(g.listeners))
	}
	if g.listeners[0].userData != 0 || g.listeners[1].userData != 2 {
		t.Errorf("expected order [0 2], got [%v %v]", g.listeners[0].userData, g.listeners[1].userData)
	}

	if g.remove(cb, 1) {
		t.Error("expected second remove of same pair to fail")
	}
}
