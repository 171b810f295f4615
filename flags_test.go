// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtTypeValues(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(ExtType(1<<0), ExtAuthorityKeyIdentifier)
	assert.Equal(ExtType(1<<8), ExtBasicConstraints)
	assert.Equal(ExtType(1<<11), ExtExtendedKeyUsage)
	assert.Equal(ExtType(1<<14), ExtFreshestCrl)
	assert.Equal(ExtType(1<<16), ExtNsCertType)
}

func TestExtTypeList(t *testing.T) {
	exts := ExtBasicConstraints | ExtKeyUsage | ExtNsCertType
	extlist := ExtTypeList(exts)

	assert.Equal(t, []ExtType{ExtKeyUsage, ExtBasicConstraints, ExtNsCertType}, extlist)
	assert.Empty(t, ExtTypeList(0))
}

func TestExtTypeName(t *testing.T) {
	assert.Equal(t, "Basic Constraints", ExtTypeName(ExtBasicConstraints))
	assert.Equal(t, "Key Usage", ExtTypeName(ExtKeyUsage))
	assert.Equal(t, "Extended Key Usage", ExtTypeName(ExtExtendedKeyUsage))
	assert.Equal(t, "Subject Alt Name", ExtTypeName(ExtSubjectAltName))
	assert.Equal(t, "Netscape Certificate Type", ExtTypeName(ExtNsCertType))
	assert.Equal(t, "Inhibit Any Policy", ExtTypeName(ExtInhibitAnyPolicy))
	assert.Equal(t, "Unknown", ExtTypeName(1<<15))
	assert.Equal(t, "Unknown", ExtTypeName(ExtKeyUsage|ExtBasicConstraints))
}

func TestExtTypeString(t *testing.T) {
	exts := ExtSubjectAltName | ExtKeyUsage
	str := exts.String()

	assert.Equal(t, "Key Usage, Subject Alt Name", str)
	assert.NotContains(t, str, "Basic")
}
