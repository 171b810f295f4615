// SPDX-License-Identifier: Apache-2.0

package oid

// pbeAlg is the payload of a PKCS#12 password based encryption entry.
type pbeAlg struct {
	md     MdType
	cipher CipherType
}

func init() {
	Register("pkcs12-pbe", pkcs12PbeAlgs)
}

// Pkcs12PbeAlgFromOid returns the digest and cipher of the PKCS#12 password based
// encryption scheme identified by oid.
func Pkcs12PbeAlgFromOid(oid Oid) (MdType, CipherType, error) {
	return GetAttrs2(pkcs12PbeAlgs, oid, func(e *Entry[pbeAlg]) (MdType, CipherType) {
		return e.Payload.md, e.Payload.cipher
	})
}

// OidFromPkcs12PbeAlg returns the PKCS#12 password based encryption OID for the
// combination of md and cipher.
func OidFromPkcs12PbeAlg(md MdType, cipher CipherType) (Oid, error) {
	return GetOidByAttrs2(pkcs12PbeAlgs, md, cipher, func(e *Entry[pbeAlg]) (MdType, CipherType) {
		return e.Payload.md, e.Payload.cipher
	})
}
