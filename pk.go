// SPDX-License-Identifier: Apache-2.0

package oid

// PkType identifies a public-key algorithm.
type PkType int

const (
	PkNone PkType = iota
	PkRSA
	PkECKey
	PkECKeyDH
	PkECDSA
	PkRSAAlt
	PkRSASSAPSS
	_PK_LAST
)

func (pk PkType) String() string {
	if pk < 0 || pk >= _PK_LAST {
		return "Unknown"
	}

	return [...]string{
		"NONE",
		"RSA",
		"EC",
		"EC_DH",
		"ECDSA",
		"RSA-alt",
		"RSASSA-PSS",
	}[pk]
}

// PublicKeyInfo algorithms (RFC 8017 C, RFC 5480 § 2.1.1)
var pkAlgs = Table[PkType]{
	{Descriptor{OidPkcs1RSA, "rsaEncryption", "RSA"}, PkRSA},
	{Descriptor{OidEcAlgUnrestricted, "id-ecPublicKey", "Generic EC key"}, PkECKey},
	{Descriptor{OidEcAlgECDH, "id-ecDH", "EC key for ECDH"}, PkECKeyDH},
}

func init() {
	Register("pk", pkAlgs)
}

// PkFromOid returns the public-key algorithm identified by oid.
func PkFromOid(oid Oid) (PkType, error) {
	return GetAttr(pkAlgs, oid, payload[PkType])
}

// OidFromPk returns the SubjectPublicKeyInfo algorithm OID for pk.
func OidFromPk(pk PkType) (Oid, error) {
	return GetOidByAttr(pkAlgs, pk, payload[PkType])
}
