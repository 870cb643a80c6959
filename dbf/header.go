// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package dbf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// dBase III Plus without memo.
const supportedVersion = 0x03

// fieldListTerminator is the byte that ends the field-descriptor array.
const fieldListTerminator = 0x0D

// eofMarker optionally follows the last data record.
const eofMarker = 0x1A

// deletionFlagLive and deletionFlagDeleted are the two legal values of a
// record's leading deletion-flag byte.
const (
	deletionFlagLive    = 0x20
	deletionFlagDeleted = 0x2A
)

// rawHeader is the fixed 32-byte file header, decoded field by field since
// Go struct layout/alignment can't be trusted to match the on-disk form.
type rawHeader struct {
	Version      byte
	LastUpdate   time.Time
	RecordCount  uint32
	HeaderLength uint16
	RecordLength uint16
}

func readHeader(r io.Reader) (rawHeader, error) {
	var buf [32]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return rawHeader{}, fmt.Errorf("%w: short file header", ErrInvalidHeader)
		}
		return rawHeader{}, err
	}

	version := buf[0]
	if version != supportedVersion {
		return rawHeader{}, fmt.Errorf("%w: got version byte 0x%02x", ErrUnsupportedVersion, version)
	}

	year := 1900 + int(buf[1])
	month := time.Month(buf[2])
	day := int(buf[3])

	h := rawHeader{
		Version:      version,
		LastUpdate:   time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
		RecordCount:  binary.LittleEndian.Uint32(buf[4:8]),
		HeaderLength: binary.LittleEndian.Uint16(buf[8:10]),
		RecordLength: binary.LittleEndian.Uint16(buf[10:12]),
	}
	// buf[12:32] are reserved bytes; dBase III Plus does not define their
	// contents and this reader does not interpret them.
	return h, nil
}

func readFieldDescriptors(r io.Reader) ([]FieldDescriptor, error) {
	var fields []FieldDescriptor
	br := bufio.NewReader(r)

	for {
		first, err := br.Peek(1)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
		}
		if first[0] == fieldListTerminator {
			if _, err := br.Discard(1); err != nil {
				return nil, err
			}
			return fields, nil
		}

		var buf [fieldDescriptorSize]byte
		if _, err := io.ReadFull(br, buf[:]); err != nil {
			return nil, fmt.Errorf("%w: short field descriptor", ErrInvalidHeader)
		}

		name := nulTerminated(buf[0:11])
		if name == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidHeader)
		}

		fields = append(fields, FieldDescriptor{
			Name:         name,
			Type:         FieldType(buf[11]),
			Length:       int(buf[16]),
			DecimalCount: int(buf[17]),
		})
	}
}

// nulTerminated trims an ASCII, NUL-padded fixed-width name field.
func nulTerminated(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
