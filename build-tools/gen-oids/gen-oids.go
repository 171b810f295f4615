// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"encoding/asn1"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"strconv"
	"strings"
	"text/template"
)

// Every OID the registry tables reference.  The generated variable names
// are exported from package oid, so renaming an entry is an API change.
var namesToOids = []struct {
	name string
	oid  string
}{
	{"OidAtCN", "2.5.4.3"},
	{"OidAtSurName", "2.5.4.4"},
	{"OidAtSerialNumber", "2.5.4.5"},
	{"OidAtCountry", "2.5.4.6"},
	{"OidAtLocality", "2.5.4.7"},
	{"OidAtState", "2.5.4.8"},
	{"OidAtOrganization", "2.5.4.10"},
	{"OidAtOrgUnit", "2.5.4.11"},
	{"OidAtTitle", "2.5.4.12"},
	{"OidAtPostalAddress", "2.5.4.16"},
	{"OidAtPostalCode", "2.5.4.17"},
	{"OidAtGivenName", "2.5.4.42"},
	{"OidAtInitials", "2.5.4.43"},
	{"OidAtGenerationQualifier", "2.5.4.44"},
	{"OidAtUniqueIdentifier", "2.5.4.45"},
	{"OidAtDnQualifier", "2.5.4.46"},
	{"OidAtPseudonym", "2.5.4.65"},
	{"OidDomainComponent", "0.9.2342.19200300.100.1.25"},
	{"OidPkcs9Email", "1.2.840.113549.1.9.1"},
	{"OidAuthorityKeyIdentifier", "2.5.29.35"},
	{"OidSubjectKeyIdentifier", "2.5.29.14"},
	{"OidKeyUsage", "2.5.29.15"},
	{"OidCertificatePolicies", "2.5.29.32"},
	{"OidSubjectAltName", "2.5.29.17"},
	{"OidBasicConstraints", "2.5.29.19"},
	{"OidExtendedKeyUsage", "2.5.29.37"},
	{"OidNsCertType", "2.16.840.1.113730.1.1"},
	{"OidServerAuth", "1.3.6.1.5.5.7.3.1"},
	{"OidClientAuth", "1.3.6.1.5.5.7.3.2"},
	{"OidCodeSigning", "1.3.6.1.5.5.7.3.3"},
	{"OidEmailProtection", "1.3.6.1.5.5.7.3.4"},
	{"OidTimeStamping", "1.3.6.1.5.5.7.3.8"},
	{"OidOcspSigning", "1.3.6.1.5.5.7.3.9"},
	{"OidPkcs1RSA", "1.2.840.113549.1.1.1"},
	{"OidPkcs1MD2", "1.2.840.113549.1.1.2"},
	{"OidPkcs1MD4", "1.2.840.113549.1.1.3"},
	{"OidPkcs1MD5", "1.2.840.113549.1.1.4"},
	{"OidPkcs1SHA1", "1.2.840.113549.1.1.5"},
	{"OidRSASSAPSS", "1.2.840.113549.1.1.10"},
	{"OidPkcs1SHA256", "1.2.840.113549.1.1.11"},
	{"OidPkcs1SHA384", "1.2.840.113549.1.1.12"},
	{"OidPkcs1SHA512", "1.2.840.113549.1.1.13"},
	{"OidPkcs1SHA224", "1.2.840.113549.1.1.14"},
	{"OidRSASHAObs", "1.3.14.3.2.29"},
	{"OidDigestAlgMD2", "1.2.840.113549.2.2"},
	{"OidDigestAlgMD4", "1.2.840.113549.2.4"},
	{"OidDigestAlgMD5", "1.2.840.113549.2.5"},
	{"OidDigestAlgSHA1", "1.3.14.3.2.26"},
	{"OidDigestAlgSHA224", "2.16.840.1.101.3.4.2.4"},
	{"OidDigestAlgSHA256", "2.16.840.1.101.3.4.2.1"},
	{"OidDigestAlgSHA384", "2.16.840.1.101.3.4.2.2"},
	{"OidDigestAlgSHA512", "2.16.840.1.101.3.4.2.3"},
	{"OidDigestAlgRIPEMD160", "1.3.36.3.2.1"},
	{"OidHmacSHA1", "1.2.840.113549.2.7"},
	{"OidHmacSHA224", "1.2.840.113549.2.8"},
	{"OidHmacSHA256", "1.2.840.113549.2.9"},
	{"OidHmacSHA384", "1.2.840.113549.2.10"},
	{"OidHmacSHA512", "1.2.840.113549.2.11"},
	{"OidDesCBC", "1.3.14.3.2.7"},
	{"OidDesEde3CBC", "1.2.840.113549.3.7"},
	{"OidAes128CBC", "2.16.840.1.101.3.4.1.2"},
	{"OidAes192CBC", "2.16.840.1.101.3.4.1.22"},
	{"OidAes256CBC", "2.16.840.1.101.3.4.1.42"},
	{"OidPkcs12PbeSHA1DES3EdeCBC", "1.2.840.113549.1.12.1.3"},
	{"OidPkcs12PbeSHA1DES2EdeCBC", "1.2.840.113549.1.12.1.4"},
	{"OidEcAlgUnrestricted", "1.2.840.10045.2.1"},
	{"OidEcAlgECDH", "1.3.132.1.12"},
	{"OidECDSASHA1", "1.2.840.10045.4.1"},
	{"OidECDSASHA224", "1.2.840.10045.4.3.1"},
	{"OidECDSASHA256", "1.2.840.10045.4.3.2"},
	{"OidECDSASHA384", "1.2.840.10045.4.3.3"},
	{"OidECDSASHA512", "1.2.840.10045.4.3.4"},
	{"OidEcGrpSecp192r1", "1.2.840.10045.3.1.1"},
	{"OidEcGrpSecp224r1", "1.3.132.0.33"},
	{"OidEcGrpSecp256r1", "1.2.840.10045.3.1.7"},
	{"OidEcGrpSecp384r1", "1.3.132.0.34"},
	{"OidEcGrpSecp521r1", "1.3.132.0.35"},
	{"OidEcGrpSecp192k1", "1.3.132.0.31"},
	{"OidEcGrpSecp224k1", "1.3.132.0.32"},
	{"OidEcGrpSecp256k1", "1.3.132.0.10"},
	{"OidEcGrpBP256r1", "1.3.36.3.3.2.8.1.1.7"},
	{"OidEcGrpBP384r1", "1.3.36.3.3.2.8.1.1.11"},
	{"OidEcGrpBP512r1", "1.3.36.3.3.2.8.1.1.13"},
}

var codeTemplate = `// SPDX-License-Identifier: Apache-2.0

// Code generated by gen-oids; DO NOT EDIT.

package oid

var (
{{- range $i, $e := .}}
{{- if $i}}
{{end}}
	// {{$e.S}}
	{{$e.Name}} = Oid{ {{- bytesFormat $e.B -}} }
{{- end}}
)
`

type tmplParam struct {
	Name string
	S    string
	B    []byte
}

func main() {
	output := flag.String("o", "", "output file name")
	flag.Parse()

	params := makeParams()

	funcs := template.FuncMap{
		"bytesFormat": bytesFormat,
	}

	var t = template.Must(template.New("code").Funcs(funcs).Parse(codeTemplate))

	buf := &bytes.Buffer{}
	if err := t.Execute(buf, params); err != nil {
		log.Fatal(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	fh := os.Stdout
	if *output != "" {
		fh, err = os.Create(*output)
		if err != nil {
			log.Fatal(err)
		}
		defer fh.Close()
	}

	if _, err := fh.Write(src); err != nil {
		log.Fatal(err)
	}
}

func makeParams() []tmplParam {
	params := make([]tmplParam, len(namesToOids))
	seen := make(map[string]string, len(namesToOids))

	// marshal the OIDs to DER encoding and strip the tag and length
	for i, entry := range namesToOids {
		if prev, ok := seen[entry.oid]; ok {
			log.Fatalf("%s and %s share OID %s", prev, entry.name, entry.oid)
		}
		seen[entry.oid] = entry.name

		objId := stringToOid(entry.oid)
		enc, err := asn1.Marshal(objId)
		if err != nil {
			panic(fmt.Errorf("parsing %s: %w", objId, err))
		}

		params[i] = tmplParam{
			Name: entry.name,
			S:    entry.oid,
			B:    enc[2:],
		}
	}

	return params
}

func bytesFormat(b []byte) string {
	strs := make([]string, len(b))
	for i, s := range b {
		strs[i] = fmt.Sprintf("0x%02x", s)
	}
	return strings.Join(strs, ", ")
}

func stringToOid(s string) asn1.ObjectIdentifier {
	// split string into components
	elms := strings.Split(s, ".")

	oid := make(asn1.ObjectIdentifier, len(elms))

	for i, elm := range elms {
		j, err := strconv.ParseUint(elm, 10, 32)
		if err != nil {
			panic(err)
		}

		oid[i] = int(j)
	}

	return oid
}
