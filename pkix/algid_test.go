// SPDX-License-Identifier: Apache-2.0

package pkix

import (
	"testing"

	oid "github.com/golang-auth/go-oid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	sha256WithRSADer = []byte{
		0x30, 0x0d,
		0x06, 0x09, 0x2a, 0x86, 0x48, 0x86, 0xf7, 0x0d, 0x01, 0x01, 0x0b,
		0x05, 0x00,
	}
	ecdsaWithSHA256Der = []byte{
		0x30, 0x0a,
		0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x04, 0x03, 0x02,
	}
	ecP256KeyDer = []byte{
		0x30, 0x13,
		0x06, 0x07, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x02, 0x01,
		0x06, 0x08, 0x2a, 0x86, 0x48, 0xce, 0x3d, 0x03, 0x01, 0x07,
	}
)

func TestParseAlgorithmIdentifier(t *testing.T) {
	ai, err := ParseAlgorithmIdentifier(sha256WithRSADer)
	require.NoError(t, err)
	assert.Equal(t, oid.OidPkcs1SHA256, ai.Algorithm)
	assert.Equal(t, []byte{0x05, 0x00}, ai.Parameters)

	md, pk, err := ai.SignatureAlgorithm()
	assert.NoError(t, err)
	assert.Equal(t, oid.MdSHA256, md)
	assert.Equal(t, oid.PkRSA, pk)
	assert.Equal(t, "RSA with SHA-256", ai.String())

	ai, err = ParseAlgorithmIdentifier(ecdsaWithSHA256Der)
	require.NoError(t, err)
	assert.Equal(t, oid.OidECDSASHA256, ai.Algorithm)
	assert.Nil(t, ai.Parameters)

	_, _, err = ai.PublicKeyAlgorithm()
	assert.ErrorIs(t, err, oid.ErrNotFound)
}

func TestParseAlgorithmIdentifierMalformed(t *testing.T) {
	tests := []struct {
		name string
		der  []byte
	}{
		{"empty", nil},
		{"not a sequence", []byte{0x31, 0x02, 0x05, 0x00}},
		{"truncated", sha256WithRSADer[:10]},
		{"trailing data", append(append([]byte{}, ecdsaWithSHA256Der...), 0x00)},
		{"no algorithm", []byte{0x30, 0x02, 0x05, 0x00}},
		{"empty algorithm", []byte{0x30, 0x02, 0x06, 0x00}},
		{"two parameters", []byte{0x30, 0x07, 0x06, 0x01, 0x2a, 0x05, 0x00, 0x05, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAlgorithmIdentifier(tt.der)
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestAlgorithmIdentifierMarshal(t *testing.T) {
	for _, der := range [][]byte{sha256WithRSADer, ecdsaWithSHA256Der, ecP256KeyDer} {
		ai, err := ParseAlgorithmIdentifier(der)
		require.NoError(t, err)

		out, err := ai.Marshal()
		assert.NoError(t, err)
		assert.Equal(t, der, out)
	}

	_, err := AlgorithmIdentifier{}.Marshal()
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestPublicKeyAlgorithm(t *testing.T) {
	assert := assert.New(t)

	ai, err := ParseAlgorithmIdentifier(ecP256KeyDer)
	require.NoError(t, err)

	pk, grp, err := ai.PublicKeyAlgorithm()
	assert.NoError(err)
	assert.Equal(oid.PkECKey, pk)
	assert.Equal(oid.EcGroupSecp256r1, grp)
	assert.Equal("Generic EC key", ai.String())

	rsa := AlgorithmIdentifier{Algorithm: oid.OidPkcs1RSA, Parameters: []byte{0x05, 0x00}}
	pk, grp, err = rsa.PublicKeyAlgorithm()
	assert.NoError(err)
	assert.Equal(oid.PkRSA, pk)
	assert.Equal(oid.EcGroupNone, grp)

	// explicit curve parameters are not supported
	explicit := AlgorithmIdentifier{Algorithm: oid.OidEcAlgUnrestricted, Parameters: []byte{0x30, 0x00}}
	_, _, err = explicit.PublicKeyAlgorithm()
	assert.ErrorIs(err, ErrMalformed)

	unknownCurve := AlgorithmIdentifier{Algorithm: oid.OidEcAlgUnrestricted, Parameters: []byte{0x06, 0x02, 0x2a, 0x03}}
	_, _, err = unknownCurve.PublicKeyAlgorithm()
	assert.ErrorIs(err, oid.ErrNotFound)
}

func TestNewSignatureAlgorithm(t *testing.T) {
	assert := assert.New(t)

	ai, err := NewSignatureAlgorithm(oid.PkRSA, oid.MdSHA256)
	require.NoError(t, err)
	der, err := ai.Marshal()
	assert.NoError(err)
	assert.Equal(sha256WithRSADer, der)

	ai, err = NewSignatureAlgorithm(oid.PkECDSA, oid.MdSHA256)
	require.NoError(t, err)
	der, err = ai.Marshal()
	assert.NoError(err)
	assert.Equal(ecdsaWithSHA256Der, der)

	_, err = NewSignatureAlgorithm(oid.PkRSASSAPSS, oid.MdNone)
	assert.ErrorIs(err, ErrUnsupported)

	_, err = NewSignatureAlgorithm(oid.PkECDSA, oid.MdRIPEMD160)
	assert.ErrorIs(err, oid.ErrNotFound)
}

func TestNewPublicKeyAlgorithm(t *testing.T) {
	assert := assert.New(t)

	ai, err := NewPublicKeyAlgorithm(oid.PkECKey, oid.EcGroupSecp256r1)
	require.NoError(t, err)
	der, err := ai.Marshal()
	assert.NoError(err)
	assert.Equal(ecP256KeyDer, der)

	ai, err = NewPublicKeyAlgorithm(oid.PkRSA, oid.EcGroupNone)
	require.NoError(t, err)
	assert.Equal(oid.OidPkcs1RSA, ai.Algorithm)
	assert.Equal([]byte{0x05, 0x00}, ai.Parameters)

	_, err = NewPublicKeyAlgorithm(oid.PkECKey, oid.EcGroupNone)
	assert.ErrorIs(err, oid.ErrNotFound)

	_, err = NewPublicKeyAlgorithm(oid.PkECDSA, oid.EcGroupSecp256r1)
	assert.ErrorIs(err, oid.ErrNotFound)
}
