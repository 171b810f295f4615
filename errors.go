// SPDX-License-Identifier: Apache-2.0

package oid

import "errors"

// Errors returned by the registry lookups and the numeric decoder.  Neither is fatal;
// callers are expected to fall back to NumericString when a lookup returns ErrNotFound
// and to treat ErrBufferTooSmall as an identifier that is too long for display.

// ErrNotFound is returned when an OID has no entry in a registry table, or when no
// table entry carries the requested attribute values.
var ErrNotFound = errors.New("the object identifier was not found")

// ErrBufferTooSmall is returned by NumericString when the output buffer cannot hold
// the rendered OID, including when an arc overflows the decoder's integer width.
var ErrBufferTooSmall = errors.New("the buffer is too small to hold the object identifier")

// ErrInvalidOid is returned when a dotted-decimal string does not describe a valid OID.
var ErrInvalidOid = errors.New("an invalid object identifier was supplied")

// ErrUnknownFamily is returned when a registry family name is not registered.
var ErrUnknownFamily = errors.New("an unknown registry family was requested")
