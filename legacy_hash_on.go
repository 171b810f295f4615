// SPDX-License-Identifier: Apache-2.0

//go:build !oid_no_legacy_hash

package oid

// MD2, MD4 and MD5 rows.  Build with -tags oid_no_legacy_hash to leave them out.

var legacyMdAlgs = Table[MdType]{
	{Descriptor{OidDigestAlgMD2, "id-md2", "MD2"}, MdMD2},
	{Descriptor{OidDigestAlgMD4, "id-md4", "MD4"}, MdMD4},
	{Descriptor{OidDigestAlgMD5, "id-md5", "MD5"}, MdMD5},
}

var legacySigAlgs = Table[sigAlg]{
	{Descriptor{OidPkcs1MD2, "md2WithRSAEncryption", "RSA with MD2"}, sigAlg{MdMD2, PkRSA}},
	{Descriptor{OidPkcs1MD4, "md4WithRSAEncryption", "RSA with MD4"}, sigAlg{MdMD4, PkRSA}},
	{Descriptor{OidPkcs1MD5, "md5WithRSAEncryption", "RSA with MD5"}, sigAlg{MdMD5, PkRSA}},
}
