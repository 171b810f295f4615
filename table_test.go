// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fruit struct {
	color  string
	weight int
}

func fruitAttrs(e *Entry[fruit]) (string, int) {
	return e.Payload.color, e.Payload.weight
}

var fruitTable = Table[fruit]{
	{Descriptor{Oid{0x2a, 0x03, 0x01}, "apple", "An apple"}, fruit{"red", 150}},
	{Descriptor{Oid{0x2a, 0x03, 0x02}, "banana", "A banana"}, fruit{"yellow", 120}},
	{Descriptor{Oid{0x2a, 0x03, 0x03}, "cherry", "A cherry"}, fruit{"red", 5}},
	{Descriptor{Oid{0x2a, 0x03, 0x04}, "strawberry", "A strawberry"}, fruit{"red", 5}},
}

func TestFindByOid(t *testing.T) {
	assert := NewAssert(t)

	e, ok := fruitTable.FindByOid(Oid{0x2a, 0x03, 0x02})
	assert.True(ok)
	assert.NotNil(e)
	assert.Equal("banana", e.Name)
	assert.Equal(fruit{"yellow", 120}, e.Payload)

	// the entry refers to the table row
	assert.Same(&fruitTable[1], e)

	tests := []struct {
		name string
		oid  Oid
	}{
		{"prefix", Oid{0x2a, 0x03}},
		{"extended", Oid{0x2a, 0x03, 0x02, 0x00}},
		{"unknown", Oid{0x2a, 0x03, 0x05}},
		{"empty", Oid{}},
		{"nil", nil},
	}

	for _, tt := range tests {
		e, ok := fruitTable.FindByOid(tt.oid)
		assert.False(ok, tt.name)
		assert.Nil(e, tt.name)
	}

	var empty Table[fruit]
	e, ok = empty.FindByOid(Oid{0x2a, 0x03, 0x01})
	assert.False(ok)
	assert.Nil(e)
}

func TestGetAttr(t *testing.T) {
	assert := assert.New(t)

	desc, err := GetAttr(fruitTable, Oid{0x2a, 0x03, 0x03}, description[fruit])
	assert.NoError(err)
	assert.Equal("A cherry", desc)

	p, err := GetAttr(fruitTable, Oid{0x2a, 0x03, 0x01}, payload[fruit])
	assert.NoError(err)
	assert.Equal(fruit{"red", 150}, p)

	desc, err = GetAttr(fruitTable, Oid{0x2a, 0x03, 0x09}, description[fruit])
	assert.ErrorIs(err, ErrNotFound)
	assert.Empty(desc)

	_, err = GetAttr(Table[fruit](nil), Oid{0x2a, 0x03, 0x01}, description[fruit])
	assert.ErrorIs(err, ErrNotFound)
}

func TestGetAttrs2(t *testing.T) {
	assert := assert.New(t)

	color, weight, err := GetAttrs2(fruitTable, Oid{0x2a, 0x03, 0x02}, fruitAttrs)
	assert.NoError(err)
	assert.Equal("yellow", color)
	assert.Equal(120, weight)

	color, weight, err = GetAttrs2(fruitTable, Oid{}, fruitAttrs)
	assert.ErrorIs(err, ErrNotFound)
	assert.Empty(color)
	assert.Zero(weight)
}

func TestGetOidByAttr(t *testing.T) {
	assert := assert.New(t)

	name := func(e *Entry[fruit]) string { return e.Name }

	o, err := GetOidByAttr(fruitTable, "cherry", name)
	assert.NoError(err)
	assert.Equal(Oid{0x2a, 0x03, 0x03}, o)

	// first match in table order
	color := func(e *Entry[fruit]) string { return e.Payload.color }
	o, err = GetOidByAttr(fruitTable, "red", color)
	assert.NoError(err)
	assert.Equal(Oid{0x2a, 0x03, 0x01}, o)

	o, err = GetOidByAttr(fruitTable, "blue", color)
	assert.ErrorIs(err, ErrNotFound)
	assert.Nil(o)

	_, err = GetOidByAttr(Table[fruit](nil), "red", color)
	assert.ErrorIs(err, ErrNotFound)
}

func TestGetOidByAttrs2(t *testing.T) {
	assert := assert.New(t)

	o, err := GetOidByAttrs2(fruitTable, "red", 5, fruitAttrs)
	assert.NoError(err)
	assert.Equal(Oid{0x2a, 0x03, 0x03}, o)

	o, err = GetOidByAttrs2(fruitTable, "red", 150, fruitAttrs)
	assert.NoError(err)
	assert.Equal(Oid{0x2a, 0x03, 0x01}, o)

	// both keys must match the same entry
	o, err = GetOidByAttrs2(fruitTable, "yellow", 5, fruitAttrs)
	assert.ErrorIs(err, ErrNotFound)
	assert.Nil(o)
}

func TestTableFamily(t *testing.T) {
	assert := assert.New(t)

	var f Family = fruitTable

	d, err := f.Describe(Oid{0x2a, 0x03, 0x04})
	assert.NoError(err)
	assert.Equal(Descriptor{Oid{0x2a, 0x03, 0x04}, "strawberry", "A strawberry"}, d)

	_, err = f.Describe(Oid{0x2a})
	assert.ErrorIs(err, ErrNotFound)

	l := f.Descriptors()
	assert.Len(l, 4)
	assert.Equal("apple", l[0].Name)
	assert.Equal("strawberry", l[3].Name)

	assert.Empty(Table[fruit](nil).Descriptors())
}

func TestGetOidByAttrReturnsCopy(t *testing.T) {
	assert := assert.New(t)

	color := func(e *Entry[fruit]) string { return e.Payload.color }
	o, err := GetOidByAttr(fruitTable, "yellow", color)
	assert.NoError(err)
	o[2] = 0x7f
	assert.Equal(Oid{0x2a, 0x03, 0x02}, fruitTable[1].Oid)

	o, err = GetOidByAttrs2(fruitTable, "red", 5, fruitAttrs)
	assert.NoError(err)
	o[0] = 0x00
	assert.Equal(Oid{0x2a, 0x03, 0x03}, fruitTable[2].Oid)

	// the exported constants are shared with the tables
	o, err = OidFromSigAlg(PkECDSA, MdSHA256)
	assert.NoError(err)
	o[len(o)-1] = 0x7f
	assert.Equal("1.2.840.10045.4.3.2", OidECDSASHA256.String())
}
