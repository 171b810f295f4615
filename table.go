// SPDX-License-Identifier: Apache-2.0

package oid

import "slices"

// Entry is one row of a registry table: the OID descriptor plus a family specific
// payload, eg. the digest and public-key algorithms of a signature algorithm.
type Entry[P any] struct {
	Descriptor
	Payload P
}

// Table is a registry family: a fixed, ordered list of entries.  Tables are assembled
// when the package is initialized and are never modified afterwards, so they are safe
// for concurrent use without locking.
//
// The OIDs within a table are unique.  Payload values are not: when several entries
// share the attribute values used for a reverse lookup, the entry declared first wins.
// Table order is therefore part of the contract and is never re-sorted or deduplicated.
type Table[P any] []Entry[P]

// FindByOid returns the first entry whose OID exactly matches oid.  An empty OID or a
// nil table is reported as not found.
//
// Parameters:
//   - oid: the encoded OID content octets to look up
//
// Returns:
//   - *Entry[P]: the matching entry, or nil if there is none
//   - bool: whether an entry was found
func (t Table[P]) FindByOid(oid Oid) (*Entry[P], bool) {
	if len(oid) == 0 {
		return nil, false
	}

	for i := range t {
		if t[i].Oid.Equal(oid) {
			return &t[i], true
		}
	}

	return nil, false
}

// GetAttr looks up oid in the table and projects a single attribute out of the
// matching entry.
//
// Returns:
//   - A: the projected attribute
//   - error: ErrNotFound if no entry matches oid
func GetAttr[P, A any](t Table[P], oid Oid, attr func(*Entry[P]) A) (A, error) {
	e, ok := t.FindByOid(oid)
	if !ok {
		var zero A
		return zero, ErrNotFound
	}

	return attr(e), nil
}

// GetAttrs2 looks up oid in the table and projects two attributes out of the same
// matching entry.
//
// Returns:
//   - A1, A2: the projected attributes
//   - error: ErrNotFound if no entry matches oid
func GetAttrs2[P, A1, A2 any](t Table[P], oid Oid, attrs func(*Entry[P]) (A1, A2)) (A1, A2, error) {
	e, ok := t.FindByOid(oid)
	if !ok {
		var zero1 A1
		var zero2 A2
		return zero1, zero2, ErrNotFound
	}

	a1, a2 := attrs(e)
	return a1, a2, nil
}

// GetOidByAttr returns the OID of the first entry, in table order, whose projected
// attribute equals key.  The OID is a copy that the caller may modify.
//
// Returns:
//   - Oid: the OID of the matching entry
//   - error: ErrNotFound if no entry carries key
func GetOidByAttr[P any, K comparable](t Table[P], key K, attr func(*Entry[P]) K) (Oid, error) {
	for i := range t {
		if attr(&t[i]) == key {
			return slices.Clone(t[i].Oid), nil
		}
	}

	return nil, ErrNotFound
}

// GetOidByAttrs2 returns the OID of the first entry, in table order, whose two
// projected attributes equal key1 and key2 respectively.  The OID is a copy that the
// caller may modify.
//
// Returns:
//   - Oid: the OID of the matching entry
//   - error: ErrNotFound if no single entry carries both keys
func GetOidByAttrs2[P any, K1, K2 comparable](t Table[P], key1 K1, key2 K2, attrs func(*Entry[P]) (K1, K2)) (Oid, error) {
	for i := range t {
		if a1, a2 := attrs(&t[i]); a1 == key1 && a2 == key2 {
			return slices.Clone(t[i].Oid), nil
		}
	}

	return nil, ErrNotFound
}

// description projects the human readable description of any entry.
func description[P any](e *Entry[P]) string {
	return e.Description
}

// payload projects the payload of an entry; used by families whose payload is a
// single enumeration value.
func payload[P any](e *Entry[P]) P {
	return e.Payload
}
