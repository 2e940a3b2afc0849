// Package schema describes the persisted shape of an entity as static
// configuration. The generic repository consults a Descriptor to know which
// fields reference other entities and must be expanded on reads, so no
// entity ever hand-rolls its own population logic.
package schema

// Kind classifies a declared field.
type Kind int

const (
	KindString Kind = iota
	KindBool
	// KindRef holds the ObjectID of a document in another collection.
	KindRef
	// KindRefList holds an array of ObjectIDs into another collection.
	KindRefList
)

// Field is one declared field of an entity.
type Field struct {
	// Name is the bson key of the field.
	Name string
	Kind Kind
	// Ref names the referenced collection for KindRef and KindRefList.
	Ref string
}

// IsReference reports whether the field points at another entity.
func (f Field) IsReference() bool {
	return f.Kind == KindRef || f.Kind == KindRefList
}

// Descriptor declares the collection and field set of one entity type.
// Descriptors are static configuration: build them once per entity and share
// them freely.
type Descriptor struct {
	Collection string
	Fields     []Field
}

// References returns the fields that must be expanded into full documents on
// reads. Pure function of the descriptor; repositories cache the result for
// the lifetime of the process.
func (d Descriptor) References() []Field {
	var refs []Field
	for _, f := range d.Fields {
		if f.IsReference() {
			refs = append(refs, f)
		}
	}
	return refs
}

// PopulatedName returns the bson key a reference field is expanded into.
// Entities that want a reference populated declare a struct field tagged
// with this key.
func PopulatedName(field string) string {
	return field + "_doc"
}
