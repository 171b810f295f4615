// SPDX-License-Identifier: Apache-2.0

package oid

import "slices"

// sigAlg is the payload of a SignatureAlgorithmIdentifier entry.
type sigAlg struct {
	md MdType
	pk PkType
}

func sigAlgAttrs(e *Entry[sigAlg]) (MdType, PkType) {
	return e.Payload.md, e.Payload.pk
}

func sigAlgKeys(e *Entry[sigAlg]) (PkType, MdType) {
	return e.Payload.pk, e.Payload.md
}

// SignatureAlgorithmIdentifier (RFC 8017 C, RFC 5758 § 3.2).
//
// sha-1WithRSAEncryption appears twice: the PKCS#1 OID and the obsolete OIW
// sha1WithRSASignature OID map to the same digest/key pair.  The PKCS#1 OID is declared
// first, so OidFromSigAlg(PkRSA, MdSHA1) always returns it; the OIW OID is only ever
// resolved in the forward direction.
var sigAlgs = slices.Concat(legacySigAlgs, Table[sigAlg]{
	{Descriptor{OidPkcs1SHA1, "sha-1WithRSAEncryption", "RSA with SHA1"}, sigAlg{MdSHA1, PkRSA}},
	{Descriptor{OidPkcs1SHA224, "sha224WithRSAEncryption", "RSA with SHA-224"}, sigAlg{MdSHA224, PkRSA}},
	{Descriptor{OidPkcs1SHA256, "sha256WithRSAEncryption", "RSA with SHA-256"}, sigAlg{MdSHA256, PkRSA}},
	{Descriptor{OidPkcs1SHA384, "sha384WithRSAEncryption", "RSA with SHA-384"}, sigAlg{MdSHA384, PkRSA}},
	{Descriptor{OidPkcs1SHA512, "sha512WithRSAEncryption", "RSA with SHA-512"}, sigAlg{MdSHA512, PkRSA}},
	{Descriptor{OidRSASHAObs, "sha-1WithRSAEncryption", "RSA with SHA1"}, sigAlg{MdSHA1, PkRSA}},
	{Descriptor{OidECDSASHA1, "ecdsa-with-SHA1", "ECDSA with SHA1"}, sigAlg{MdSHA1, PkECDSA}},
	{Descriptor{OidECDSASHA224, "ecdsa-with-SHA224", "ECDSA with SHA224"}, sigAlg{MdSHA224, PkECDSA}},
	{Descriptor{OidECDSASHA256, "ecdsa-with-SHA256", "ECDSA with SHA256"}, sigAlg{MdSHA256, PkECDSA}},
	{Descriptor{OidECDSASHA384, "ecdsa-with-SHA384", "ECDSA with SHA384"}, sigAlg{MdSHA384, PkECDSA}},
	{Descriptor{OidECDSASHA512, "ecdsa-with-SHA512", "ECDSA with SHA512"}, sigAlg{MdSHA512, PkECDSA}},
	{Descriptor{OidRSASSAPSS, "RSASSA-PSS", "RSASSA-PSS"}, sigAlg{MdNone, PkRSASSAPSS}},
})

func init() {
	Register("signature", sigAlgs)
}

// SigAlgDescFromOid returns the human readable description of the signature
// algorithm identified by oid, eg. "RSA with SHA-256".
func SigAlgDescFromOid(oid Oid) (string, error) {
	return GetAttr(sigAlgs, oid, description[sigAlg])
}

// SigAlgFromOid returns the digest and public-key algorithms that make up the
// signature algorithm identified by oid.
//
// Returns:
//   - MdType: the digest algorithm; MdNone for RSASSA-PSS, whose digest is carried in
//     the algorithm parameters
//   - PkType: the public-key algorithm
//   - error: ErrNotFound if the OID is not a known signature algorithm
func SigAlgFromOid(oid Oid) (MdType, PkType, error) {
	return GetAttrs2(sigAlgs, oid, sigAlgAttrs)
}

// OidFromSigAlg returns the signature algorithm OID for the combination of pk and md.
func OidFromSigAlg(pk PkType, md MdType) (Oid, error) {
	return GetOidByAttrs2(sigAlgs, pk, md, sigAlgKeys)
}
