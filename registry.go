// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"slices"
	"strings"
)

// Family is a registry table viewed without its payload type.  It is used to search
// and list tables by name, eg. for diagnostics.  Table implements Family.
type Family interface {
	// Describe returns the descriptor of the entry matching oid.
	Describe(oid Oid) (Descriptor, error)
	// Descriptors returns the descriptors of every entry, in table order.
	Descriptors() []Descriptor
}

// Describe implements Family.
func (t Table[P]) Describe(oid Oid) (Descriptor, error) {
	e, ok := t.FindByOid(oid)
	if !ok {
		return Descriptor{}, ErrNotFound
	}

	return e.Descriptor, nil
}

// Descriptors implements Family.
func (t Table[P]) Descriptors() []Descriptor {
	l := make([]Descriptor, len(t))
	for i := range t {
		l[i] = t[i].Descriptor
	}

	return l
}

// initialized here rather than in init(): the family files register from their own
// init functions, which may run first
var families = make(map[string]Family)

// Register makes a family available by name.  The built-in families register
// themselves; applications may add their own tables.  Register is not safe for
// concurrent use and should only be called from an init function.
func Register(name string, f Family) {
	name = strings.ToLower(name)
	_, ok := families[name]

	// can't register two families with the same name
	if ok {
		panic("Cannot have two OID families named " + name)
	}

	families[name] = f
}

// IsRegistered can be used to find out whether a named family
// is registered or not
func IsRegistered(name string) bool {
	name = strings.ToLower(name)
	_, ok := families[name]

	return ok
}

// LookupFamily returns a family by name.
func LookupFamily(name string) (Family, error) {
	name = strings.ToLower(name)
	f, ok := families[name]
	if !ok {
		return nil, ErrUnknownFamily
	}

	return f, nil
}

// Families returns the sorted list of registered family names
func Families() (l []string) {
	l = make([]string, 0, len(families))

	for name := range families {
		l = append(l, name)
	}

	slices.Sort(l)
	return
}

// Describe searches every registered family, in name order, for oid.
//
// Returns:
//   - string: the name of the family holding the OID
//   - Descriptor: the descriptor of the matching entry
//   - error: ErrNotFound if no family knows the OID
func Describe(oid Oid) (string, Descriptor, error) {
	for _, name := range Families() {
		if d, err := families[name].Describe(oid); err == nil {
			return name, d, nil
		}
	}

	return "", Descriptor{}, ErrNotFound
}
