// SPDX-License-Identifier: Apache-2.0

package oid

import "crypto/elliptic"

// EcGroupID identifies an elliptic curve domain.
type EcGroupID int

const (
	EcGroupNone EcGroupID = iota
	EcGroupSecp192r1
	EcGroupSecp224r1
	EcGroupSecp256r1
	EcGroupSecp384r1
	EcGroupSecp521r1
	EcGroupBP256r1
	EcGroupBP384r1
	EcGroupBP512r1
	EcGroupSecp192k1
	EcGroupSecp224k1
	EcGroupSecp256k1
	_EC_GROUP_LAST
)

func (id EcGroupID) String() string {
	if id < 0 || id >= _EC_GROUP_LAST {
		return "Unknown"
	}

	return [...]string{
		"NONE",
		"secp192r1",
		"secp224r1",
		"secp256r1",
		"secp384r1",
		"secp521r1",
		"brainpoolP256r1",
		"brainpoolP384r1",
		"brainpoolP512r1",
		"secp192k1",
		"secp224k1",
		"secp256k1",
	}[id]
}

// Curve returns the Go implementation of the curve, for the NIST curves that
// crypto/elliptic supports.
func (id EcGroupID) Curve() (elliptic.Curve, bool) {
	switch id {
	case EcGroupSecp224r1:
		return elliptic.P224(), true
	case EcGroupSecp256r1:
		return elliptic.P256(), true
	case EcGroupSecp384r1:
		return elliptic.P384(), true
	case EcGroupSecp521r1:
		return elliptic.P521(), true
	}

	return nil, false
}

// namedCurve (RFC 5480 § 2.1.1.1, RFC 5639 § 4.1)
var ecGroups = Table[EcGroupID]{
	{Descriptor{OidEcGrpSecp192r1, "secp192r1", "secp192r1"}, EcGroupSecp192r1},
	{Descriptor{OidEcGrpSecp224r1, "secp224r1", "secp224r1"}, EcGroupSecp224r1},
	{Descriptor{OidEcGrpSecp256r1, "secp256r1", "secp256r1"}, EcGroupSecp256r1},
	{Descriptor{OidEcGrpSecp384r1, "secp384r1", "secp384r1"}, EcGroupSecp384r1},
	{Descriptor{OidEcGrpSecp521r1, "secp521r1", "secp521r1"}, EcGroupSecp521r1},
	{Descriptor{OidEcGrpSecp192k1, "secp192k1", "secp192k1"}, EcGroupSecp192k1},
	{Descriptor{OidEcGrpSecp224k1, "secp224k1", "secp224k1"}, EcGroupSecp224k1},
	{Descriptor{OidEcGrpSecp256k1, "secp256k1", "secp256k1"}, EcGroupSecp256k1},
	{Descriptor{OidEcGrpBP256r1, "brainpoolP256r1", "brainpool256r1"}, EcGroupBP256r1},
	{Descriptor{OidEcGrpBP384r1, "brainpoolP384r1", "brainpool384r1"}, EcGroupBP384r1},
	{Descriptor{OidEcGrpBP512r1, "brainpoolP512r1", "brainpool512r1"}, EcGroupBP512r1},
}

func init() {
	Register("curve", ecGroups)
}

// EcGroupFromOid returns the curve identified by the namedCurve oid.
func EcGroupFromOid(oid Oid) (EcGroupID, error) {
	return GetAttr(ecGroups, oid, payload[EcGroupID])
}

// OidFromEcGroup returns the namedCurve OID for id.
func OidFromEcGroup(id EcGroupID) (Oid, error) {
	return GetOidByAttr(ecGroups, id, payload[EcGroupID])
}
