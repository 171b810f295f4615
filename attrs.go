// SPDX-License-Identifier: Apache-2.0

package oid

import "strings"

// X.520 attribute types (RFC 5280 A.1, RFC 4519 § 2), keyed to the short name
// used in distinguished name strings.
var x520Attrs = Table[string]{
	{Descriptor{OidAtCN, "id-at-commonName", "Common Name"}, "CN"},
	{Descriptor{OidAtCountry, "id-at-countryName", "Country"}, "C"},
	{Descriptor{OidAtLocality, "id-at-locality", "Locality"}, "L"},
	{Descriptor{OidAtState, "id-at-state", "State"}, "ST"},
	{Descriptor{OidAtOrganization, "id-at-organizationName", "Organization"}, "O"},
	{Descriptor{OidAtOrgUnit, "id-at-organizationalUnitName", "Org Unit"}, "OU"},
	{Descriptor{OidPkcs9Email, "emailAddress", "E-mail address"}, "emailAddress"},
	{Descriptor{OidAtSerialNumber, "id-at-serialNumber", "Serial number"}, "serialNumber"},
	{Descriptor{OidAtPostalAddress, "id-at-postalAddress", "Postal address"}, "postalAddress"},
	{Descriptor{OidAtPostalCode, "id-at-postalCode", "Postal code"}, "postalCode"},
	{Descriptor{OidAtSurName, "id-at-surName", "Surname"}, "SN"},
	{Descriptor{OidAtGivenName, "id-at-givenName", "Given name"}, "GN"},
	{Descriptor{OidAtInitials, "id-at-initials", "Initials"}, "initials"},
	{Descriptor{OidAtGenerationQualifier, "id-at-generationQualifier", "Generation qualifier"}, "generationQualifier"},
	{Descriptor{OidAtTitle, "id-at-title", "Title"}, "title"},
	{Descriptor{OidAtDnQualifier, "id-at-dnQualifier", "Distinguished Name qualifier"}, "dnQualifier"},
	{Descriptor{OidAtPseudonym, "id-at-pseudonym", "Pseudonym"}, "pseudonym"},
	{Descriptor{OidDomainComponent, "id-domainComponent", "Domain component"}, "DC"},
	{Descriptor{OidAtUniqueIdentifier, "id-at-uniqueIdentifier", "Unique Identifier"}, "uniqueIdentifier"},
}

func init() {
	Register("attribute", x520Attrs)
}

// AttrShortNameFromOid returns the short name of the attribute type identified by
// oid, eg. "CN" for id-at-commonName.
func AttrShortNameFromOid(oid Oid) (string, error) {
	return GetAttr(x520Attrs, oid, payload[string])
}

// OidFromAttrShortName returns the attribute type OID for a short name.  As for
// attribute types in RFC 4514 strings, the match ignores case.
func OidFromAttrShortName(name string) (Oid, error) {
	return GetOidByAttr(x520Attrs, strings.ToLower(name), func(e *Entry[string]) string {
		return strings.ToLower(e.Payload)
	})
}
