package foyer

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	ffxml "github.com/chemtk/ffxml"
	"github.com/chemtk/ffxml/xtree"
)

// Document builds the force-field document tree for the structure s. The
// returned tree has a single ForceField root holding the AtomTypes and
// NonbondedForce sections plus one section per kind of bonded term present
// in s with assigned parameters. A nil o means DefaultOptions(). The tree
// is freshly built on every call and exclusively owned by the caller.
func Document(s *ffxml.Structure, o *Options) (*xtree.Element, error) {
	if o == nil {
		o = DefaultOptions()
	}
	//as in other topology codes, a structure with an assigned type on its
	//first bond is taken to be parameterized.
	if !s.Parametrized() {
		return nil, fmt.Errorf("%w: no bonds with assigned parameters", ErrUnparametrized)
	}
	root := xtree.New("ForceField")
	if err := writeAtoms(root, s, o); err != nil {
		return nil, err
	}
	writeBonds(root, s.Bonds, o.unique)
	if len(s.Angles) > 0 && s.Angles[0].Type != nil {
		writeAngles(root, s.Angles, o.unique)
	}
	if len(s.Dihedrals) > 0 && s.Dihedrals[0].Type != nil {
		writePeriodicTorsions(root, s.Dihedrals, o.unique)
	}
	if len(s.RBTorsions) > 0 && s.RBTorsions[0].Type != nil {
		writeRBTorsions(root, s.RBTorsions, o.unique)
	}
	dedup(root, o.unique)
	return root, nil
}

// Write builds the document for s and serializes it to w as XML.
func Write(s *ffxml.Structure, w io.Writer, o *Options) error {
	root, err := Document(s, o)
	if err != nil {
		return err
	}
	return root.Write(w)
}

// WriteFile builds the document for s and writes it to the file at path,
// gzip-compressed if path ends in ".gz".
func WriteFile(s *ffxml.Structure, path string, o *Options) error {
	root, err := Document(s, o)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if strings.HasSuffix(path, ".gz") {
		gz := gzip.NewWriter(f)
		if err := root.Write(gz); err != nil {
			gz.Close()
			f.Close()
			return err
		}
		if err := gz.Close(); err != nil {
			f.Close()
			return err
		}
	} else if err := root.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeAtoms emits the AtomTypes and NonbondedForce sections. The two
// inferred 1-4 scaling factors go on the NonbondedForce element itself.
func writeAtoms(root *xtree.Element, s *ffxml.Structure, o *Options) error {
	coul14, err := inferCoulomb14(s)
	if err != nil {
		return err
	}
	lj14, err := inferLJ14(s)
	if err != nil {
		return err
	}
	atomtypes := root.NewChild("AtomTypes")
	nonbonded := root.NewChild("NonbondedForce")
	nonbonded.Set("coulomb14scale", ftoa(coul14))
	nonbonded.Set("lj14scale", ftoa(lj14))
	for _, at := range s.Atoms {
		name := at.TypeName()
		class, element, def, desc, doi := describe(o.forcefield, name)
		t := atomtypes.NewChild("Type")
		t.Set("name", name)
		t.Set("class", class)
		t.Set("element", element)
		t.Set("mass", ftoa(at.Mass))
		t.Set("def", def)
		t.Set("desc", desc)
		t.Set("doi", doi)
		nb := nonbonded.NewChild("Atom")
		if !o.unique {
			nb.Set("id", strconv.Itoa(at.Index))
		}
		nb.Set("type", name)
		nb.Set("charge", chargeAttr(at.Charge))
		nb.Set("sigma", sigmaAttr(at.Type.Sigma))
		nb.Set("epsilon", epsilonAttr(at.Type.Epsilon))
	}
	return nil
}

func writeBonds(root *xtree.Element, bonds []*ffxml.Bond, unique bool) {
	forces := root.NewChild("HarmonicBondForce")
	for _, b := range bonds {
		e := forces.NewChild("Bond")
		types := b.TypeNames()
		if unique {
			canonBond(types)
		} else {
			e.Set("id1", strconv.Itoa(b.Atom1.Index))
			e.Set("id2", strconv.Itoa(b.Atom2.Index))
		}
		setTypes(e, types)
		e.Set("length", lengthAttr(b.Type.Req))
		e.Set("k", bondKAttr(b.Type.K))
	}
}

func writeAngles(root *xtree.Element, angles []*ffxml.Angle, unique bool) {
	forces := root.NewChild("HarmonicAngleForce")
	for _, a := range angles {
		e := forces.NewChild("Angle")
		types := a.TypeNames()
		if unique {
			canonAngle(types)
		} else {
			e.Set("id1", strconv.Itoa(a.Atom1.Index))
			e.Set("id2", strconv.Itoa(a.Atom2.Index))
			e.Set("id3", strconv.Itoa(a.Atom3.Index))
		}
		setTypes(e, types)
		e.Set("angle", angleAttr(a.Type.ThetEq))
		e.Set("k", angleKAttr(a.Type.K))
	}
}

func writePeriodicTorsions(root *xtree.Element, dihedrals []*ffxml.Dihedral, unique bool) {
	forces := root.NewChild("PeriodicTorsionForce")
	for _, d := range dihedrals {
		tag := "Proper"
		if d.Improper {
			tag = "Improper"
		}
		e := forces.NewChild(tag)
		types := d.TypeNames()
		if d.Improper {
			//the central atom is listed third; it leads the tuple in both
			//modes, and the remaining types are only sorted in unique mode.
			centralFirst(types)
			if unique {
				canonImproper(types)
			} else {
				e.Set("id1", strconv.Itoa(d.Atom3.Index))
				e.Set("id2", strconv.Itoa(d.Atom2.Index))
				e.Set("id3", strconv.Itoa(d.Atom1.Index))
				e.Set("id4", strconv.Itoa(d.Atom4.Index))
			}
		} else if unique {
			canonTorsion(types)
		} else {
			e.Set("id1", strconv.Itoa(d.Atom1.Index))
			e.Set("id2", strconv.Itoa(d.Atom2.Index))
			e.Set("id3", strconv.Itoa(d.Atom3.Index))
			e.Set("id4", strconv.Itoa(d.Atom4.Index))
		}
		setTypes(e, types)
		e.Set("periodicity1", strconv.Itoa(d.Type.Periodicity))
		e.Set("phase1", phaseAttr(d.Type.Phase))
		e.Set("k1", torsionKAttr(d.Type.PhiK))
	}
}

func writeRBTorsions(root *xtree.Element, torsions []*ffxml.RBTorsion, unique bool) {
	forces := root.NewChild("RBTorsionForce")
	for _, rb := range torsions {
		e := forces.NewChild("Proper")
		types := rb.TypeNames()
		if unique {
			canonTorsion(types)
		} else {
			e.Set("id1", strconv.Itoa(rb.Atom1.Index))
			e.Set("id2", strconv.Itoa(rb.Atom2.Index))
			e.Set("id3", strconv.Itoa(rb.Atom3.Index))
			e.Set("id4", strconv.Itoa(rb.Atom4.Index))
		}
		setTypes(e, types)
		for i, c := range rb.Type.C {
			e.Set("c"+strconv.Itoa(i), rbAttr(c))
		}
	}
}

func setTypes(e *xtree.Element, types []string) {
	for i, t := range types {
		e.Set("type"+strconv.Itoa(i+1), t)
	}
}
