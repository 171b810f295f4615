// SPDX-License-Identifier: Apache-2.0

package oid

// X.509 certificate extensions (RFC 5280 § 4.2)
var x509Exts = Table[ExtType]{
	{Descriptor{OidBasicConstraints, "id-ce-basicConstraints", "Basic Constraints"}, ExtBasicConstraints},
	{Descriptor{OidKeyUsage, "id-ce-keyUsage", "Key Usage"}, ExtKeyUsage},
	{Descriptor{OidExtendedKeyUsage, "id-ce-extKeyUsage", "Extended Key Usage"}, ExtExtendedKeyUsage},
	{Descriptor{OidSubjectAltName, "id-ce-subjectAltName", "Subject Alt Name"}, ExtSubjectAltName},
	{Descriptor{OidNsCertType, "id-netscape-certtype", "Netscape Certificate Type"}, ExtNsCertType},
	{Descriptor{OidCertificatePolicies, "id-ce-certificatePolicies", "Certificate Policies"}, ExtCertificatePolicies},
	{Descriptor{OidSubjectKeyIdentifier, "id-ce-subjectKeyIdentifier", "Subject Key Identifier"}, ExtSubjectKeyIdentifier},
	{Descriptor{OidAuthorityKeyIdentifier, "id-ce-authorityKeyIdentifier", "Authority Key Identifier"}, ExtAuthorityKeyIdentifier},
}

// Extended key usage purposes (RFC 5280 § 4.2.1.12).  The family carries no payload;
// lookups return the description.
var extKeyUsages = Table[struct{}]{
	{Descriptor: Descriptor{OidServerAuth, "id-kp-serverAuth", "TLS Web Server Authentication"}},
	{Descriptor: Descriptor{OidClientAuth, "id-kp-clientAuth", "TLS Web Client Authentication"}},
	{Descriptor: Descriptor{OidCodeSigning, "id-kp-codeSigning", "Code Signing"}},
	{Descriptor: Descriptor{OidEmailProtection, "id-kp-emailProtection", "E-mail Protection"}},
	{Descriptor: Descriptor{OidTimeStamping, "id-kp-timeStamping", "Time Stamping"}},
	{Descriptor: Descriptor{OidOcspSigning, "id-kp-OCSPSigning", "OCSP Signing"}},
}

func init() {
	Register("x509-ext", x509Exts)
	Register("ext-key-usage", extKeyUsages)
}

// ExtTypeFromOid returns the extension bit for the X.509 extension identified by oid.
// Parsers typically treat ErrNotFound as an unsupported, non-critical extension.
func ExtTypeFromOid(oid Oid) (ExtType, error) {
	return GetAttr(x509Exts, oid, payload[ExtType])
}

// OidFromExtType returns the OID of the extension identified by a single extension bit.
func OidFromExtType(ext ExtType) (Oid, error) {
	return GetOidByAttr(x509Exts, ext, payload[ExtType])
}

// ExtKeyUsageFromOid returns the description of the extended key usage purpose
// identified by oid, eg. "Code Signing".
func ExtKeyUsageFromOid(oid Oid) (string, error) {
	return GetAttr(extKeyUsages, oid, description[struct{}])
}
