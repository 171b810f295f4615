// SPDX-License-Identifier: Apache-2.0

package pkix

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	ldapv3 "github.com/go-ldap/ldap/v3"
	oid "github.com/golang-auth/go-oid"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// AttributeTypeAndValue is one attribute of a distinguished name.
type AttributeTypeAndValue struct {
	Type  oid.Oid
	Value string
}

// Name is a distinguished name with a single attribute per relative distinguished
// name, in the order the RDNs are encoded in an X.509 RDNSequence (most significant
// first, eg. C before O before CN).
type Name []AttributeTypeAndValue

// ParseDistinguishedName parses an RFC 4514 string such as "CN=example,O=Org,C=US".
// Attribute types are resolved with the X.520 attribute registry; types it does not
// know may be given in dotted-decimal form.  Multi-valued RDNs are not supported.
//
// RFC 4514 strings list the RDNs last first, so the result is reversed into
// RDNSequence order.
func ParseDistinguishedName(s string) (Name, error) {
	dn, err := ldapv3.ParseDN(s)
	if err != nil {
		return nil, fmt.Errorf("distinguished name (DN) %q is not valid: %w", s, err)
	}

	name := make(Name, 0, len(dn.RDNs))
	for _, rdn := range dn.RDNs {
		if len(rdn.Attributes) > 1 {
			return nil, fmt.Errorf("distinguished name (DN) %q has multi-valued RDN attributes, which are not supported", s)
		}

		for _, attr := range rdn.Attributes {
			t, err := attributeType(attr.Type)
			if err != nil {
				return nil, fmt.Errorf("distinguished name (DN) %q has unknown attribute type %q: %w", s, attr.Type, err)
			}

			name = append(name, AttributeTypeAndValue{Type: t, Value: attr.Value})
		}
	}

	slices.Reverse(name)
	return name, nil
}

func attributeType(s string) (oid.Oid, error) {
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		return oid.ParseNumericString(s)
	}

	return oid.OidFromAttrShortName(s)
}

// String returns the name in RFC 4514 form, last RDN first, using the registry short
// names for the attribute types it knows and the dotted-decimal form for the others.
func (n Name) String() string {
	var sb strings.Builder

	for i := len(n) - 1; i >= 0; i-- {
		atv := n[i]
		if i < len(n)-1 {
			sb.WriteByte(',')
		}
		sb.WriteString(DisplayOid(atv.Type, oid.AttrShortNameFromOid))
		sb.WriteByte('=')
		sb.WriteString(escapeValue(atv.Value))
	}

	return sb.String()
}

// escapeValue escapes an attribute value as per RFC 4514 § 2.4.
func escapeValue(v string) string {
	var sb strings.Builder

	for i, r := range v {
		switch {
		case strings.ContainsRune(`,+"\<>;=`, r):
			sb.WriteByte('\\')
		case i == 0 && (r == '#' || r == ' '):
			sb.WriteByte('\\')
		case i == len(v)-1 && r == ' ':
			sb.WriteByte('\\')
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&sb, "\\%02x", r)
			continue
		}
		sb.WriteRune(r)
	}

	return sb.String()
}

// Marshal returns the DER encoding of the name as an X.509 RDNSequence.  Country
// and serial number values are encoded as PrintableString, e-mail addresses and
// domain components as IA5String, everything else as UTF8String.
func (n Name) Marshal() ([]byte, error) {
	var b cryptobyte.Builder

	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		for _, atv := range n {
			b.AddASN1(cbasn1.SET, func(b *cryptobyte.Builder) {
				b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
					if len(atv.Type) == 0 {
						b.SetError(fmt.Errorf("%w: empty attribute type", ErrMalformed))
						return
					}
					b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) {
						b.AddBytes(atv.Type)
					})

					tag := stringTag(atv.Type)
					if tag == cbasn1.PrintableString && !isPrintable(atv.Value) {
						tag = cbasn1.UTF8String
					}
					b.AddASN1(tag, func(b *cryptobyte.Builder) {
						b.AddBytes([]byte(atv.Value))
					})
				})
			})
		}
	})

	return b.Bytes()
}

func stringTag(t oid.Oid) cbasn1.Tag {
	switch {
	case t.Equal(oid.OidAtCountry), t.Equal(oid.OidAtSerialNumber):
		return cbasn1.PrintableString
	case t.Equal(oid.OidPkcs9Email), t.Equal(oid.OidDomainComponent):
		return cbasn1.IA5String
	}

	return cbasn1.UTF8String
}

// isPrintable reports whether s only holds PrintableString characters (X.680 § 41.4).
func isPrintable(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
		if unicode.IsLetter(r) || unicode.IsDigit(r) || strings.ContainsRune(" '()+,-./:=?", r) {
			continue
		}
		return false
	}

	return true
}

// ParseName decodes a DER encoded X.509 RDNSequence.
func ParseName(der []byte) (Name, error) {
	var rdns cryptobyte.String

	input := cryptobyte.String(der)
	if !input.ReadASN1(&rdns, cbasn1.SEQUENCE) || !input.Empty() {
		return nil, fmt.Errorf("%w: name is not a single SEQUENCE", ErrMalformed)
	}

	var name Name
	for !rdns.Empty() {
		var set, atv, t, v cryptobyte.String
		var tag cbasn1.Tag

		if !rdns.ReadASN1(&set, cbasn1.SET) {
			return nil, fmt.Errorf("%w: RDN is not a SET", ErrMalformed)
		}
		if !set.ReadASN1(&atv, cbasn1.SEQUENCE) || !set.Empty() {
			return nil, fmt.Errorf("%w: RDN must hold exactly one attribute", ErrMalformed)
		}
		if !atv.ReadASN1(&t, cbasn1.OBJECT_IDENTIFIER) || len(t) == 0 {
			return nil, fmt.Errorf("%w: attribute has no type", ErrMalformed)
		}
		if !atv.ReadAnyASN1(&v, &tag) || !atv.Empty() {
			return nil, fmt.Errorf("%w: attribute has no single value", ErrMalformed)
		}

		name = append(name, AttributeTypeAndValue{Type: oid.Oid(t), Value: string(v)})
	}

	return name, nil
}
