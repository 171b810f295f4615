// SPDX-License-Identifier: Apache-2.0

//go:build oid_no_legacy_hash

package oid

var legacyMdAlgs Table[MdType]

var legacySigAlgs Table[sigAlg]
