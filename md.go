// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"crypto"
	"slices"
)

// MdType identifies a message digest algorithm.
type MdType int

const (
	MdNone MdType = iota
	MdMD2
	MdMD4
	MdMD5
	MdSHA1
	MdSHA224
	MdSHA256
	MdSHA384
	MdSHA512
	MdRIPEMD160
	_MD_LAST
)

func (md MdType) String() string {
	if md < 0 || md >= _MD_LAST {
		return "Unknown"
	}

	return [...]string{
		"NONE",
		"MD2",
		"MD4",
		"MD5",
		"SHA1",
		"SHA224",
		"SHA256",
		"SHA384",
		"SHA512",
		"RIPEMD160",
	}[md]
}

// Hash converts the digest type to a Go crypto hash, if there is one and it is linked
// into the binary.
func (md MdType) Hash() (crypto.Hash, bool) {
	var hash crypto.Hash
	switch md {
	case MdMD4:
		hash = crypto.MD4
	case MdMD5:
		hash = crypto.MD5
	case MdSHA1:
		hash = crypto.SHA1
	case MdSHA224:
		hash = crypto.SHA224
	case MdSHA256:
		hash = crypto.SHA256
	case MdSHA384:
		hash = crypto.SHA384
	case MdSHA512:
		hash = crypto.SHA512
	case MdRIPEMD160:
		hash = crypto.RIPEMD160
	default:
		return hash, false
	}
	return hash, hash.Available()
}

// digestAlgorithm (RFC 8017 B.1); the MD2/MD4/MD5 rows come first when legacy
// hashes are compiled in
var mdAlgs = slices.Concat(legacyMdAlgs, Table[MdType]{
	{Descriptor{OidDigestAlgSHA1, "id-sha1", "SHA-1"}, MdSHA1},
	{Descriptor{OidDigestAlgSHA224, "id-sha224", "SHA-224"}, MdSHA224},
	{Descriptor{OidDigestAlgSHA256, "id-sha256", "SHA-256"}, MdSHA256},
	{Descriptor{OidDigestAlgSHA384, "id-sha384", "SHA-384"}, MdSHA384},
	{Descriptor{OidDigestAlgSHA512, "id-sha512", "SHA-512"}, MdSHA512},
	{Descriptor{OidDigestAlgRIPEMD160, "id-ripemd160", "RIPEMD-160"}, MdRIPEMD160},
})

// HMAC digestAlgorithm (RFC 4231 § 3.1, RFC 8018 B.1)
var mdHmacs = Table[MdType]{
	{Descriptor{OidHmacSHA1, "hmacSHA1", "HMAC-SHA-1"}, MdSHA1},
	{Descriptor{OidHmacSHA224, "hmacSHA224", "HMAC-SHA-224"}, MdSHA224},
	{Descriptor{OidHmacSHA256, "hmacSHA256", "HMAC-SHA-256"}, MdSHA256},
	{Descriptor{OidHmacSHA384, "hmacSHA384", "HMAC-SHA-384"}, MdSHA384},
	{Descriptor{OidHmacSHA512, "hmacSHA512", "HMAC-SHA-512"}, MdSHA512},
}

func init() {
	Register("digest", mdAlgs)
	Register("hmac", mdHmacs)
}

// MdFromOid returns the digest algorithm identified by oid.
func MdFromOid(oid Oid) (MdType, error) {
	return GetAttr(mdAlgs, oid, payload[MdType])
}

// OidFromMd returns the digest algorithm OID for md.
func OidFromMd(md MdType) (Oid, error) {
	return GetOidByAttr(mdAlgs, md, payload[MdType])
}

// MdHmacFromOid returns the digest used by the HMAC algorithm identified by oid.
func MdHmacFromOid(oid Oid) (MdType, error) {
	return GetAttr(mdHmacs, oid, payload[MdType])
}

// OidFromMdHmac returns the HMAC algorithm OID built on md.
func OidFromMdHmac(md MdType) (Oid, error) {
	return GetOidByAttr(mdHmacs, md, payload[MdType])
}
