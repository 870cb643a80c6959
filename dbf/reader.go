// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package dbf parses dBase III Plus table files: a 32-byte header, an
// array of field descriptors, and a sequence of fixed-width records. Text
// is decoded from the legacy CP-437 code page; malformed bytes never fail
// a decode, they degrade to the Unicode replacement character.
package dbf

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/saites/igra-converter/internal/cp437"
)

// Reader produces the rows of a dBase III Plus table from a seekable byte
// source. It is restartable: Rewind returns to the first data record so
// the same Reader can be scanned more than once.
type Reader struct {
	r            io.ReadSeeker
	schema       Schema
	lastUpdate   rawHeader
	recordCount  uint32
	headerLength uint16
	recordLength uint16
	dataOffset   int64

	read uint32 // records consumed so far, including skipped deleted ones
}

// NewReader parses the header and field descriptors from r and positions
// the reader at the first data record.
func NewReader(r io.ReadSeeker) (*Reader, error) {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}

	fields, err := readFieldDescriptors(r)
	if err != nil {
		return nil, err
	}

	dataOffset := int64(h.HeaderLength)
	if _, err := r.Seek(dataOffset, io.SeekStart); err != nil {
		return nil, fmt.Errorf("%w: cannot seek to data offset: %v", ErrInvalidHeader, err)
	}

	rd := &Reader{
		r:            r,
		schema:       Schema{Fields: fields},
		lastUpdate:   h,
		recordCount:  h.RecordCount,
		headerLength: h.HeaderLength,
		recordLength: h.RecordLength,
		dataOffset:   dataOffset,
	}
	return rd, nil
}

// Schema returns the table's field descriptors in on-disk order.
func (r *Reader) Schema() Schema { return r.schema }

// ModDate returns the header's last-update year, month, and day.
func (r *Reader) ModDate() (year int, month int, day int) {
	d := r.lastUpdate.LastUpdate
	return d.Year(), int(d.Month()), d.Day()
}

// RecordCount returns the number of records the header declares, including
// any that are marked deleted.
func (r *Reader) RecordCount() int { return int(r.recordCount) }

// Rewind seeks back to the first data record, so the Reader can be
// scanned again from the start.
func (r *Reader) Rewind() error {
	r.read = 0
	_, err := r.r.Seek(r.dataOffset, io.SeekStart)
	return err
}

// Next decodes and returns the next live (non-deleted) row. It returns
// io.EOF once the declared record count is exhausted or the optional EOF
// marker is encountered.
func (r *Reader) Next() (Row, error) {
	for {
		if r.read >= r.recordCount {
			return Row{}, io.EOF
		}

		buf := make([]byte, 1+int(r.recordLength))
		n, err := io.ReadFull(r.r, buf)
		if err != nil {
			if n == 0 || err == io.EOF {
				return Row{}, io.EOF
			}
			if bytes.Equal(buf[:1], []byte{eofMarker}) {
				return Row{}, io.EOF
			}
			return Row{}, fmt.Errorf("%w: %v", ErrTruncatedRecord, err)
		}

		r.read++

		flag := buf[0]
		if flag == eofMarker {
			return Row{}, io.EOF
		}
		if flag != deletionFlagLive && flag != deletionFlagDeleted {
			return Row{}, fmt.Errorf("%w: unexpected deletion flag 0x%02x", ErrTruncatedRecord, flag)
		}
		if flag == deletionFlagDeleted {
			continue
		}

		row, err := r.decodeRecord(buf[1:])
		if err != nil {
			return Row{}, err
		}
		return row, nil
	}
}

func (r *Reader) decodeRecord(data []byte) (Row, error) {
	values := make([]Value, len(r.schema.Fields))
	offset := 0
	for i, f := range r.schema.Fields {
		if offset+f.Length > len(data) {
			return Row{}, fmt.Errorf("%w: field %q exceeds record length", ErrTruncatedRecord, f.Name)
		}
		raw := data[offset : offset+f.Length]
		offset += f.Length

		v, err := decodeValue(f, raw)
		if err != nil {
			return Row{}, err
		}
		values[i] = v
	}

	return Row{Schema: &r.schema, Values: values}, nil
}

func decodeValue(f FieldDescriptor, raw []byte) (Value, error) {
	switch f.Type {
	case Character, Numeric, DateField:
		text := strings.TrimSpace(cp437.Decode(raw))
		return Value{Type: f.Type, Text: text}, nil
	case Logical:
		if len(raw) == 0 {
			return Value{Type: Logical, Bool: LogicalUnknown}, nil
		}
		switch raw[0] {
		case 'T', 't', 'Y', 'y':
			return Value{Type: Logical, Bool: LogicalTrue}, nil
		case 'F', 'f', 'N', 'n':
			return Value{Type: Logical, Bool: LogicalFalse}, nil
		default:
			return Value{Type: Logical, Bool: LogicalUnknown}, nil
		}
	default:
		// Unknown field type: preserve the decoded text rather than
		// failing, since the reader must tolerate layouts it wasn't
		// written against.
		return Value{Type: f.Type, Text: strings.TrimSpace(cp437.Decode(raw))}, nil
	}
}
