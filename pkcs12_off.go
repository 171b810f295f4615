// SPDX-License-Identifier: Apache-2.0

//go:build oid_no_pkcs12

package oid

var pkcs12PbeAlgs Table[pbeAlg]
