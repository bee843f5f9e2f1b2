package mdtree

import "testing"

// Local element variants for the core tests. The core never depends
// on the markdown catalog; these stand in for any third-party set.

type doc struct{}

func (doc) Role() Role      { return Block }
func (doc) Container() bool { return true }

type para struct{}

func (para) Role() Role      { return Block }
func (para) Container() bool { return true }
func (para) CanContain(child Element) bool {
	return child.Role() == Inline
}

type rule struct{}

func (rule) Role() Role      { return Block }
func (rule) Container() bool { return false }

type txt struct{ s string }

func (txt) Role() Role      { return Inline }
func (txt) Container() bool { return false }

type wrap struct{}

func (wrap) Role() Role      { return Inline }
func (wrap) Container() bool { return true }

// listEl only holds itemEl, mimicking catalog overrides.
type listEl struct{}

func (listEl) Role() Role      { return Block }
func (listEl) Container() bool { return true }
func (listEl) CanContain(child Element) bool {
	_, ok := child.(itemEl)
	return ok
}

type itemEl struct{}

func (itemEl) Role() Role      { return Block }
func (itemEl) Container() bool { return true }

func TestCanContain(t *testing.T) {
	tests := []struct {
		name          string
		parent, child Element
		want          bool
	}{
		{"block container takes block", doc{}, doc{}, true},
		{"block container rejects inline by default", doc{}, txt{}, false},
		{"inline container takes inline", wrap{}, txt{s: "x"}, true},
		{"inline container rejects block", wrap{}, rule{}, false},
		{"leaf takes nothing", rule{}, rule{}, false},
		{"inline leaf takes nothing", txt{}, txt{}, false},
		{"override allows inline under block", para{}, txt{}, true},
		{"override rejects block", para{}, doc{}, false},
		{"list takes item", listEl{}, itemEl{}, true},
		{"list rejects other blocks", listEl{}, doc{}, false},
		{"nil parent", nil, txt{}, false},
		{"nil child", doc{}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanContain(tt.parent, tt.child); got != tt.want {
				t.Errorf("CanContain(%v, %v) = %v, want %v", tt.parent, tt.child, got, tt.want)
			}
		})
	}
}

type oddEl struct{ n int }

func (oddEl) Role() Role      { return Inline }
func (oddEl) Container() bool { return false }
func (e oddEl) Equal(other Element) bool {
	o, ok := other.(oddEl)
	return ok && e.n%2 == o.n%2
}

func TestElementsEqual(t *testing.T) {
	if !ElementsEqual(txt{s: "a"}, txt{s: "a"}) {
		t.Error("identical data should compare equal")
	}
	if ElementsEqual(txt{s: "a"}, txt{s: "b"}) {
		t.Error("different data should compare unequal")
	}
	if ElementsEqual(txt{}, wrap{}) {
		t.Error("different variants should compare unequal")
	}
	// Equaler override wins over deep equality
	if !ElementsEqual(oddEl{n: 1}, oddEl{n: 3}) {
		t.Error("Equaler override not consulted")
	}
	if ElementsEqual(oddEl{n: 1}, oddEl{n: 2}) {
		t.Error("Equaler override not consulted")
	}
}

func TestElementName(t *testing.T) {
	if got := ElementName(listEl{}); got != "listel" {
		t.Errorf("ElementName(listEl{}) = %q", got)
	}
	if got := ElementName(txt{}); got != "txt" {
		t.Errorf("ElementName(txt{}) = %q", got)
	}
}

func TestElementAttrs(t *testing.T) {
	if attrs := ElementAttrs(doc{}); attrs != nil {
		t.Errorf("no exported fields, got %v", attrs)
	}
	// unexported fields are not data
	if attrs := ElementAttrs(txt{s: "x"}); attrs != nil {
		t.Errorf("unexported fields leaked: %v", attrs)
	}
}
