// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"encoding/hex"
	"slices"
)

//go:generate  go run ./build-tools/gen-oids -o oids_gen.go

// Oid represents an Object Identifier as found in ASN.1 encoded cryptographic structures.
// Elements of the byte slice represent the DER encoding of the object identifier, excluding
// the ASN.1 header (tag value 0x06 and length).  Stripping that header is the job of the
// caller's ASN.1 decoder.
//
// The exported Oid variables and the entries returned by FindByOid and Describe refer to
// the static registry tables and must not be modified.  The OidFromXxx reverse lookups
// return copies.
type Oid []byte

// Equal reports whether o and other hold the same encoded octets.  Length and content
// must both match; a prefix is not a match.
func (o Oid) Equal(other Oid) bool {
	return slices.Equal(o, other)
}

// String returns the dotted-decimal form of the OID, eg. "1.2.840.10045.4.3.2".
// If an arc is too large to be rendered, String returns the hex encoding of the
// OID octets instead.
func (o Oid) String() string {
	// every content octet renders to at most three digits and a dot; the
	// first octet renders to at most "6.39"
	buf := make([]byte, 4*len(o)+1)

	n, err := NumericString(buf, o)
	if err != nil {
		return hex.EncodeToString(o)
	}

	return string(buf[:n])
}

// Descriptor holds the metadata shared by every registry entry: the encoded OID,
// its canonical ASN.1 name (eg. "sha256WithRSAEncryption") and a short human
// readable description (eg. "RSA with SHA-256").
type Descriptor struct {
	Oid         Oid
	Name        string
	Description string
}
