// SPDX-License-Identifier: Apache-2.0

package pkix

import (
	"errors"
	"fmt"

	oid "github.com/golang-auth/go-oid"
	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// ErrMalformed is returned when DER input does not have the expected structure.
var ErrMalformed = errors.New("malformed DER input")

// ErrUnsupported is returned for algorithm identifiers this package cannot build.
var ErrUnsupported = errors.New("the algorithm is not supported")

var asn1Null = []byte{0x05, 0x00}

// AlgorithmIdentifier is the X.509 AlgorithmIdentifier structure (RFC 5280 § 4.1.1.2).
type AlgorithmIdentifier struct {
	Algorithm oid.Oid
	// Parameters holds the complete DER encoding of the parameters, or nil if
	// they are absent.
	Parameters []byte
}

// ParseAlgorithmIdentifier decodes a DER encoded AlgorithmIdentifier.
func ParseAlgorithmIdentifier(der []byte) (AlgorithmIdentifier, error) {
	var seq, algo cryptobyte.String

	input := cryptobyte.String(der)
	if !input.ReadASN1(&seq, cbasn1.SEQUENCE) || !input.Empty() {
		return AlgorithmIdentifier{}, fmt.Errorf("%w: AlgorithmIdentifier is not a single SEQUENCE", ErrMalformed)
	}

	if !seq.ReadASN1(&algo, cbasn1.OBJECT_IDENTIFIER) || len(algo) == 0 {
		return AlgorithmIdentifier{}, fmt.Errorf("%w: AlgorithmIdentifier has no algorithm OID", ErrMalformed)
	}

	ai := AlgorithmIdentifier{Algorithm: oid.Oid(algo)}

	if !seq.Empty() {
		var params cryptobyte.String
		var tag cbasn1.Tag
		if !seq.ReadAnyASN1Element(&params, &tag) || !seq.Empty() {
			return AlgorithmIdentifier{}, fmt.Errorf("%w: AlgorithmIdentifier has trailing data", ErrMalformed)
		}
		ai.Parameters = params
	}

	return ai, nil
}

// Marshal returns the DER encoding of the AlgorithmIdentifier.
func (a AlgorithmIdentifier) Marshal() ([]byte, error) {
	if len(a.Algorithm) == 0 {
		return nil, fmt.Errorf("%w: empty algorithm OID", ErrMalformed)
	}

	var b cryptobyte.Builder
	b.AddASN1(cbasn1.SEQUENCE, func(b *cryptobyte.Builder) {
		b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) {
			b.AddBytes(a.Algorithm)
		})
		if a.Parameters != nil {
			b.AddBytes(a.Parameters)
		}
	})

	return b.Bytes()
}

// String returns the description of the algorithm from whichever registry family
// knows it, or its dotted-decimal form.
func (a AlgorithmIdentifier) String() string {
	return DisplayOid(a.Algorithm, func(o oid.Oid) (string, error) {
		_, d, err := oid.Describe(o)
		return d.Description, err
	})
}

// SignatureAlgorithm returns the digest and public-key algorithms of a signature
// AlgorithmIdentifier.
func (a AlgorithmIdentifier) SignatureAlgorithm() (oid.MdType, oid.PkType, error) {
	return oid.SigAlgFromOid(a.Algorithm)
}

// PublicKeyAlgorithm returns the public-key algorithm of a SubjectPublicKeyInfo
// AlgorithmIdentifier.  For EC keys the namedCurve parameter is resolved as well
// (RFC 5480 § 2.1.1); other keys report EcGroupNone.
func (a AlgorithmIdentifier) PublicKeyAlgorithm() (oid.PkType, oid.EcGroupID, error) {
	pk, err := oid.PkFromOid(a.Algorithm)
	if err != nil {
		return oid.PkNone, oid.EcGroupNone, err
	}

	if pk != oid.PkECKey && pk != oid.PkECKeyDH {
		return pk, oid.EcGroupNone, nil
	}

	var curve cryptobyte.String
	params := cryptobyte.String(a.Parameters)
	if !params.ReadASN1(&curve, cbasn1.OBJECT_IDENTIFIER) || !params.Empty() {
		return pk, oid.EcGroupNone, fmt.Errorf("%w: EC parameters are not a namedCurve", ErrMalformed)
	}

	grp, err := oid.EcGroupFromOid(oid.Oid(curve))
	if err != nil {
		return pk, oid.EcGroupNone, err
	}

	return pk, grp, nil
}

// NewSignatureAlgorithm builds the AlgorithmIdentifier for a signature made with pk
// and md.  PKCS#1 v1.5 identifiers carry NULL parameters (RFC 4055 § 5); ECDSA
// identifiers carry none (RFC 5758 § 3.2).
func NewSignatureAlgorithm(pk oid.PkType, md oid.MdType) (AlgorithmIdentifier, error) {
	if pk == oid.PkRSASSAPSS {
		return AlgorithmIdentifier{}, fmt.Errorf("%w: RSASSA-PSS parameters must be built by the caller", ErrUnsupported)
	}

	o, err := oid.OidFromSigAlg(pk, md)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}

	ai := AlgorithmIdentifier{Algorithm: o}
	if pk == oid.PkRSA {
		ai.Parameters = asn1Null
	}

	return ai, nil
}

// NewPublicKeyAlgorithm builds the SubjectPublicKeyInfo AlgorithmIdentifier for pk.
// grp is only used for EC keys.
func NewPublicKeyAlgorithm(pk oid.PkType, grp oid.EcGroupID) (AlgorithmIdentifier, error) {
	o, err := oid.OidFromPk(pk)
	if err != nil {
		return AlgorithmIdentifier{}, err
	}

	ai := AlgorithmIdentifier{Algorithm: o}

	switch pk {
	case oid.PkRSA:
		ai.Parameters = asn1Null
	case oid.PkECKey, oid.PkECKeyDH:
		curve, err := oid.OidFromEcGroup(grp)
		if err != nil {
			return AlgorithmIdentifier{}, err
		}

		var b cryptobyte.Builder
		b.AddASN1(cbasn1.OBJECT_IDENTIFIER, func(b *cryptobyte.Builder) {
			b.AddBytes(curve)
		})
		if ai.Parameters, err = b.Bytes(); err != nil {
			return AlgorithmIdentifier{}, err
		}
	}

	return ai, nil
}
