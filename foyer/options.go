package foyer

// Annotations gives access to the descriptive atom-type data that a force
// field may carry beyond the physical parameters: the atom class, the
// element, the SMARTS-like definition, a free-text description and a
// literature reference. All lookups are by atom-type name and return false
// when the force field has no data for that type, which is an expected
// condition, not an error.
type Annotations interface {
	Class(typeName string) (string, bool)
	Element(typeName string) (string, bool)
	Definition(typeName string) (string, bool)
	Description(typeName string) (string, bool)
	Reference(typeName string) (string, bool)
}

// MapAnnotations is a map-backed Annotations implementation. Nil maps are
// valid and simply hold no data.
type MapAnnotations struct {
	Classes      map[string]string `json:"classes,omitempty"`
	Elements     map[string]string `json:"elements,omitempty"`
	Definitions  map[string]string `json:"definitions,omitempty"`
	Descriptions map[string]string `json:"descriptions,omitempty"`
	References   map[string]string `json:"references,omitempty"`
}

func (M *MapAnnotations) Class(typeName string) (string, bool) {
	v, ok := M.Classes[typeName]
	return v, ok
}

func (M *MapAnnotations) Element(typeName string) (string, bool) {
	v, ok := M.Elements[typeName]
	return v, ok
}

func (M *MapAnnotations) Definition(typeName string) (string, bool) {
	v, ok := M.Definitions[typeName]
	return v, ok
}

func (M *MapAnnotations) Description(typeName string) (string, bool) {
	v, ok := M.Descriptions[typeName]
	return v, ok
}

func (M *MapAnnotations) Reference(typeName string) (string, bool) {
	v, ok := M.References[typeName]
	return v, ok
}

// describe returns the five descriptive attributes for one atom type,
// substituting the empty string wherever the annotation source is absent
// or has no data for the type.
func describe(a Annotations, typeName string) (class, element, def, desc, doi string) {
	if a == nil {
		return
	}
	class, _ = a.Class(typeName)
	element, _ = a.Element(typeName)
	def, _ = a.Definition(typeName)
	desc, _ = a.Description(typeName)
	doi, _ = a.Reference(typeName)
	return
}

// Options contains the options for the document emission.
type Options struct {
	forcefield Annotations
	unique     bool
}

// DefaultOptions returns the default emission options: unique mode, no
// annotation source.
func DefaultOptions() *Options {
	O := new(Options)
	O.unique = true
	return O
}

// Unique returns whether the document is emitted in unique mode (one entry
// per distinct atom-type combination) rather than per instance, and sets
// it to a new value, if given.
func (O *Options) Unique(u ...bool) bool {
	if len(u) > 0 {
		O.unique = u[0]
	}
	return O.unique
}

// ForceField returns the annotation source consulted for the descriptive
// atom-type attributes, and sets it to a new one, if given. With no source
// those attributes are written as empty strings.
func (O *Options) ForceField(a ...Annotations) Annotations {
	if len(a) > 0 {
		O.forcefield = a[0]
	}
	return O.forcefield
}
