// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package registration

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/saites/igra-converter/common"
)

// ErrMalformedBatch is returned by DecodeBatch when the input is not
// well-formed JSON, or does not match the batch document shape. Per spec
// §7 item 3, this rejects the whole batch as a single error to the
// caller; it never becomes a per-registration finding.
const ErrMalformedBatch = common.ConstError("registration: malformed batch")

// DecodeBatch parses a completed-registrations document from r.
func DecodeBatch(r io.Reader) (Batch, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var b Batch
	if err := dec.Decode(&b); err != nil {
		return Batch{}, fmt.Errorf("%w: %v", ErrMalformedBatch, err)
	}
	if dec.More() {
		return Batch{}, fmt.Errorf("%w: trailing data after document", ErrMalformedBatch)
	}
	return b, nil
}
