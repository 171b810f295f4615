// SPDX-License-Identifier: Apache-2.0

package oid

import "strings"

// ExtType identifies an X.509 certificate extension.  Values are single bits so that a
// certificate parser can accumulate the set of extensions it has seen in one ExtType.
type ExtType uint32

// X.509 extension bits.
const (
	ExtAuthorityKeyIdentifier ExtType = 1 << iota // id-ce-authorityKeyIdentifier
	ExtSubjectKeyIdentifier                       // id-ce-subjectKeyIdentifier
	ExtKeyUsage                                   // id-ce-keyUsage
	ExtCertificatePolicies                        // id-ce-certificatePolicies
	ExtPolicyMappings                             // id-ce-policyMappings
	ExtSubjectAltName                             // id-ce-subjectAltName
	ExtIssuerAltName                              // id-ce-issuerAltName
	ExtSubjectDirectoryAttrs                      // id-ce-subjectDirectoryAttributes
	ExtBasicConstraints                           // id-ce-basicConstraints
	ExtNameConstraints                            // id-ce-nameConstraints
	ExtPolicyConstraints                          // id-ce-policyConstraints
	ExtExtendedKeyUsage                           // id-ce-extKeyUsage
	ExtCrlDistributionPoints                      // id-ce-cRLDistributionPoints
	ExtInhibitAnyPolicy                           // id-ce-inhibitAnyPolicy
	ExtFreshestCrl                                // id-ce-freshestCRL
	_                                             // bit 15 is unassigned
	ExtNsCertType                                 // Netscape certificate type
)

// ExtTypeList splits a set of extension bits into its members, lowest bit first.
func ExtTypeList(e ExtType) (el []ExtType) {
	t := ExtType(1)
	for i := 0; i < 32; i++ {
		if e&t != 0 {
			el = append(el, t)
		}

		t <<= 1
	}

	return
}

// ExtTypeName returns a display name for a single extension bit.
func ExtTypeName(e ExtType) string {
	switch e {
	case ExtAuthorityKeyIdentifier:
		return "Authority Key Identifier"
	case ExtSubjectKeyIdentifier:
		return "Subject Key Identifier"
	case ExtKeyUsage:
		return "Key Usage"
	case ExtCertificatePolicies:
		return "Certificate Policies"
	case ExtPolicyMappings:
		return "Policy Mappings"
	case ExtSubjectAltName:
		return "Subject Alt Name"
	case ExtIssuerAltName:
		return "Issuer Alt Name"
	case ExtSubjectDirectoryAttrs:
		return "Subject Directory Attributes"
	case ExtBasicConstraints:
		return "Basic Constraints"
	case ExtNameConstraints:
		return "Name Constraints"
	case ExtPolicyConstraints:
		return "Policy Constraints"
	case ExtExtendedKeyUsage:
		return "Extended Key Usage"
	case ExtCrlDistributionPoints:
		return "CRL Distribution Points"
	case ExtInhibitAnyPolicy:
		return "Inhibit Any Policy"
	case ExtFreshestCrl:
		return "Freshest CRL"
	case ExtNsCertType:
		return "Netscape Certificate Type"
	}

	return "Unknown"
}

func (e ExtType) String() string {
	names := []string{}
	for _, ext := range ExtTypeList(e) {
		names = append(names, ExtTypeName(ext))
	}

	return strings.Join(names, ", ")
}
