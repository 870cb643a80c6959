// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package registry owns the loaded personnel database: the set of
// personnel.Record values plus the BK-tree indexes built over their names,
// and the lookup/search operations the validation engine and the search
// command drive against it. A Database is immutable once constructed;
// every read is safe to share across concurrent validate calls.
package registry

import "github.com/saites/igra-converter/common"

// ErrRecordNotFound is returned by Lookup for an IGRA# with no matching
// record.
const ErrRecordNotFound = common.ConstError("registry: record not found")

// ErrDuplicateIGRANumber is returned while loading if two rows share an
// IGRA#, violating the personnel table's primary-key invariant.
const ErrDuplicateIGRANumber = common.ConstError("registry: duplicate IGRA number")

// ErrEmptyIGRANumber is returned while loading if a row's IGRA# is empty.
const ErrEmptyIGRANumber = common.ConstError("registry: empty IGRA number")
