// SPDX-License-Identifier: Apache-2.0

package pkix

import (
	"errors"

	oid "github.com/golang-auth/go-oid"
)

// maxOidDisplay is the size of the buffer OIDs are rendered into for display.
const maxOidDisplay = 64

// TooLongForDisplay is shown in place of an OID whose numeric form does not fit
// the display buffer.
const TooLongForDisplay = "<identifier too long for display>"

// DisplayOid returns the name that lookup gives o.  If lookup does not know the OID,
// the dotted-decimal form is used instead.
func DisplayOid(o oid.Oid, lookup func(oid.Oid) (string, error)) string {
	if lookup != nil {
		if s, err := lookup(o); err == nil {
			return s
		}
	}

	var buf [maxOidDisplay]byte
	n, err := oid.NumericString(buf[:], o)
	if errors.Is(err, oid.ErrBufferTooSmall) {
		return TooLongForDisplay
	}

	return string(buf[:n])
}
