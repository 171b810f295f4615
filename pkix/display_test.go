// SPDX-License-Identifier: Apache-2.0

package pkix

import (
	"bytes"
	"errors"
	"testing"

	oid "github.com/golang-auth/go-oid"
	"github.com/stretchr/testify/assert"
)

func TestDisplayOid(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("RSA with SHA-256", DisplayOid(oid.OidPkcs1SHA256, oid.SigAlgDescFromOid))

	// not a signature algorithm
	assert.Equal("2.5.4.3", DisplayOid(oid.OidAtCN, oid.SigAlgDescFromOid))

	assert.Equal("1.2.840.10045.4.3.2", DisplayOid(oid.OidECDSASHA256, nil))

	failing := func(oid.Oid) (string, error) { return "", errors.New("broken") }
	assert.Equal("2.5", DisplayOid(oid.Oid{0x55}, failing))

	assert.Equal("", DisplayOid(nil, nil))
}

func TestDisplayOidTooLong(t *testing.T) {
	assert := assert.New(t)

	// "1.2" followed by twenty ".128" arcs
	long := append(oid.Oid{0x2a}, bytes.Repeat([]byte{0x81, 0x00}, 20)...)
	assert.Equal(TooLongForDisplay, DisplayOid(long, nil))

	// the full form is still available to callers with a larger buffer
	assert.Len(long.String(), 83)

	overflow := append(oid.Oid{0x2a}, bytes.Repeat([]byte{0xff}, 12)...)
	overflow = append(overflow, 0x01)
	assert.Equal(TooLongForDisplay, DisplayOid(overflow, oid.SigAlgDescFromOid))
}
