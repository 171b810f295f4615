// SPDX-License-Identifier: Apache-2.0

/*
Package oid is a registry of the object identifiers found in X.509 certificates and
PKCS structures, and a decoder that renders raw OIDs in dotted-decimal form.

OIDs are handled as their DER content octets (type Oid), as extracted from a
certificate by an ASN.1 decoder.  Each algorithm family (signature, digest, HMAC,
public-key, named curve, cipher, PKCS#12 PBE, X.509 extension, extended key usage
and X.520 attribute type) is a fixed Table that can be searched by OID:

	md, pk, err := oid.SigAlgFromOid(raw)

or in reverse, by the typed values it carries:

	raw, err := oid.OidFromSigAlg(oid.PkECDSA, oid.MdSHA256)

Lookups that find nothing return ErrNotFound.  The usual reaction is to display the
OID numerically instead:

	buf := make([]byte, 64)
	n, err := oid.NumericString(buf, raw)

Tables are read-only once the package is initialized and may be used from any number
of goroutines.  The legacy MD2/MD4/MD5 rows and the PKCS#12 PBE family can be left out
of a build with the oid_no_legacy_hash and oid_no_pkcs12 build tags.
*/
package oid
