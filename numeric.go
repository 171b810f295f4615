// SPDX-License-Identifier: Apache-2.0

package oid

import (
	"encoding/asn1"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/crypto/cryptobyte"
	cbasn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// NumericString renders oid in its dotted-decimal form ("x.y.z...") into buf and returns
// the number of bytes written.  The decoding follows ITU-T X.690 § 8.19: the first content
// octet holds the first two arcs as 40*X+Y and every following arc is a big-endian base-128
// number whose octets, except the last, have the high bit set.
//
// NumericString never writes past len(buf).  If a fragment of the rendering does not fit in
// the remaining space, or an arc is too large for a uint64, it fails with ErrBufferTooSmall
// and the contents of buf are unspecified.  An empty OID renders as nothing.
//
// An arc left unterminated at the end of oid (the final octet has its high bit set) is
// silently dropped.
//
// Parameters:
//   - buf: the output buffer; its length is the capacity
//   - oid: the encoded OID content octets
//
// Returns:
//   - int: the number of bytes written to buf
//   - error: ErrBufferTooSmall if the rendering does not fit
func NumericString(buf []byte, oid Oid) (int, error) {
	w := numericWriter{buf: buf}

	// the first octet carries the first two arcs
	if len(oid) > 0 {
		if err := w.writeArcs(uint64(oid[0]/40), uint64(oid[0]%40)); err != nil {
			return 0, err
		}
	}

	var value uint64
	for _, b := range oid[min(len(oid), 1):] {
		// the next shift would lose bits
		if (value<<7)>>7 != value {
			return 0, ErrBufferTooSmall
		}

		value = value<<7 | uint64(b&0x7f)

		if b&0x80 == 0 {
			if err := w.writeArc(value); err != nil {
				return 0, err
			}
			value = 0
		}
	}

	return w.n, nil
}

type numericWriter struct {
	buf []byte
	n   int
}

// writeArcs writes the leading "X.Y" pair as a single fragment.
func (w *numericWriter) writeArcs(x, y uint64) error {
	var scratch [41]byte

	frag := strconv.AppendUint(scratch[:0], x, 10)
	frag = append(frag, '.')
	frag = strconv.AppendUint(frag, y, 10)

	return w.write(frag)
}

// writeArc writes a subsequent ".N" fragment.
func (w *numericWriter) writeArc(v uint64) error {
	var scratch [21]byte

	frag := append(scratch[:0], '.')
	frag = strconv.AppendUint(frag, v, 10)

	return w.write(frag)
}

func (w *numericWriter) write(frag []byte) error {
	if len(frag) > len(w.buf)-w.n {
		return ErrBufferTooSmall
	}

	w.n += copy(w.buf[w.n:], frag)
	return nil
}

// ParseNumericString encodes a dotted-decimal OID such as "1.2.840.113549.1.1.11" into its
// DER content octets.  It is the inverse of NumericString.
//
// Returns:
//   - Oid: the encoded OID
//   - error: ErrInvalidOid if s is not a valid dotted-decimal OID
func ParseNumericString(s string) (Oid, error) {
	elms := strings.Split(s, ".")

	id := make(asn1.ObjectIdentifier, len(elms))
	for i, elm := range elms {
		j, err := strconv.ParseUint(elm, 10, strconv.IntSize-1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %s", ErrInvalidOid, s, err)
		}

		id[i] = int(j)
	}

	// the first subidentifier is 40*X+Y and must fit in an int
	if len(id) > 1 && id[0] == 2 && id[1] > math.MaxInt-80 {
		return nil, fmt.Errorf("%w: %q: second arc out of range", ErrInvalidOid, s)
	}

	var b cryptobyte.Builder
	b.AddASN1ObjectIdentifier(id)

	der, err := b.Bytes()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %s", ErrInvalidOid, s, err)
	}

	// strip the tag and length again
	var content cryptobyte.String
	input := cryptobyte.String(der)
	if !input.ReadASN1(&content, cbasn1.OBJECT_IDENTIFIER) || len(content) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidOid, s)
	}

	return Oid(content), nil
}
