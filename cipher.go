// SPDX-License-Identifier: Apache-2.0

package oid

// CipherType identifies a block cipher and mode.
type CipherType int

const (
	CipherNone CipherType = iota
	CipherDesCBC
	CipherDesEdeCBC
	CipherDesEde3CBC
	CipherAes128CBC
	CipherAes192CBC
	CipherAes256CBC
	_CIPHER_LAST
)

func (c CipherType) String() string {
	if c < 0 || c >= _CIPHER_LAST {
		return "Unknown"
	}

	return [...]string{
		"NONE",
		"DES-CBC",
		"DES-EDE-CBC",
		"DES-EDE3-CBC",
		"AES-128-CBC",
		"AES-192-CBC",
		"AES-256-CBC",
	}[c]
}

// PKCS#5 PBES2 encryption schemes (RFC 8018 B.2)
var cipherAlgs = Table[CipherType]{
	{Descriptor{OidDesCBC, "desCBC", "DES-CBC"}, CipherDesCBC},
	{Descriptor{OidDesEde3CBC, "des-ede3-cbc", "DES-EDE3-CBC"}, CipherDesEde3CBC},
	{Descriptor{OidAes128CBC, "aes128-CBC", "AES-128-CBC"}, CipherAes128CBC},
	{Descriptor{OidAes192CBC, "aes192-CBC", "AES-192-CBC"}, CipherAes192CBC},
	{Descriptor{OidAes256CBC, "aes256-CBC", "AES-256-CBC"}, CipherAes256CBC},
}

func init() {
	Register("cipher", cipherAlgs)
}

// CipherFromOid returns the cipher identified by oid.
func CipherFromOid(oid Oid) (CipherType, error) {
	return GetAttr(cipherAlgs, oid, payload[CipherType])
}

// OidFromCipher returns the encryption scheme OID for c.
func OidFromCipher(c CipherType) (Oid, error) {
	return GetOidByAttr(cipherAlgs, c, payload[CipherType])
}
