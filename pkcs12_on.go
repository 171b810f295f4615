// SPDX-License-Identifier: Apache-2.0

//go:build !oid_no_pkcs12

package oid

// PKCS#12 PBE algorithms (RFC 7292 C).  Build with -tags oid_no_pkcs12 to leave
// the family empty.
var pkcs12PbeAlgs = Table[pbeAlg]{
	{
		Descriptor{OidPkcs12PbeSHA1DES3EdeCBC, "pbeWithSHAAnd3-KeyTripleDES-CBC", "PBE with SHA1 and 3-Key 3DES"},
		pbeAlg{MdSHA1, CipherDesEde3CBC},
	},
	{
		Descriptor{OidPkcs12PbeSHA1DES2EdeCBC, "pbeWithSHAAnd2-KeyTripleDES-CBC", "PBE with SHA1 and 2-Key 3DES"},
		pbeAlg{MdSHA1, CipherDesEdeCBC},
	},
}
