package ffxml

import "testing"

func TestParametrized(t *testing.T) {
	ct := &AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	a := &Atom{Type: ct, Index: 0}
	b := &Atom{Type: ct, Index: 1}
	s := new(Structure)
	if s.Parametrized() {
		t.Error("empty structure reported as parameterized")
	}
	s.Atoms = []*Atom{a, b}
	s.Bonds = []*Bond{{Atom1: a, Atom2: b}}
	if s.Parametrized() {
		t.Error("structure with a typeless bond reported as parameterized")
	}
	s.Bonds[0].Type = &BondType{K: 340, Req: 1.09}
	if !s.Parametrized() {
		t.Error("parameterized structure not detected")
	}
	if s.Len() != 2 {
		t.Errorf("wrong atom count: %d", s.Len())
	}
}

func TestTypeNames(t *testing.T) {
	ct := &AtomType{Name: "CT"}
	hc := &AtomType{Name: "HC"}
	a := &Atom{Type: ct}
	b := &Atom{Type: hc}
	bond := &Bond{Atom1: b, Atom2: a}
	names := bond.TypeNames()
	if names[0] != "HC" || names[1] != "CT" {
		t.Errorf("wrong type names: %v", names)
	}
	//an atom without an assigned type gives an empty name
	c := new(Atom)
	if c.TypeName() != "" {
		t.Errorf("expected empty type name, got %q", c.TypeName())
	}
}

func TestAtomTypeCopy(t *testing.T) {
	ct := &AtomType{Name: "CT", Sigma: 3.4, Epsilon: 0.1094}
	cp := ct.Copy()
	if cp == ct {
		t.Error("copy returned the same pointer")
	}
	cp.Sigma = 1.0
	if ct.Sigma != 3.4 {
		t.Error("modifying the copy changed the original")
	}
}
