// SPDX-License-Identifier: Apache-2.0

//go:build !oid_no_legacy_hash

package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLegacyHash(t *testing.T) {
	assert := assert.New(t)

	md, err := MdFromOid(mustParse(t, "1.2.840.113549.2.5"))
	assert.NoError(err)
	assert.Equal(MdMD5, md)

	o, err := OidFromMd(MdMD2)
	assert.NoError(err)
	assert.Equal(OidDigestAlgMD2, o)

	md, pk, err := SigAlgFromOid(OidPkcs1MD5)
	assert.NoError(err)
	assert.Equal(MdMD5, md)
	assert.Equal(PkRSA, pk)

	o, err = OidFromSigAlg(PkRSA, MdMD4)
	assert.NoError(err)
	assert.Equal("1.2.840.113549.1.1.3", o.String())
}
