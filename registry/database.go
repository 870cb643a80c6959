// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package registry

import (
	"fmt"
	"io"
	"os"

	lru "github.com/hashicorp/golang-lru"

	"github.com/saites/igra-converter/bktree"
	"github.com/saites/igra-converter/dbf"
	"github.com/saites/igra-converter/namematch"
	"github.com/saites/igra-converter/personnel"
)

// searchCacheSize bounds the LRU cache SearchPerformance consults, sized
// for a handful of operators repeatedly probing the same few names rather
// than for throughput; this is a read-mostly desktop tool, not a server.
const searchCacheSize = 256

// Database owns the personnel records loaded from a DBF file and the
// indexes built over their names. Construct with Load (from a file path)
// or New (from an already-projected record set, e.g. in tests). Once
// built, a Database exposes no mutation method and is safe for concurrent
// read-only use.
type Database struct {
	byID    map[string]personnel.Record
	matcher *namematch.Matcher
	search  *lru.Cache
}

// Load opens path, parses it as a dBase III Plus personnel table, and
// builds a Database over its records, using cfg to configure the name
// matcher's thresholds.
func Load(path string, cfg namematch.Config) (*Database, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	reader, err := dbf.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("registry: parsing %s: %w", path, err)
	}

	records, err := personnel.LoadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("registry: loading %s: %w", path, err)
	}

	return New(records, cfg)
}

// LoadFrom builds a Database directly from an already-open seekable byte
// source, so tests and callers with an in-memory table don't need a real
// file on disk.
func LoadFrom(r io.ReadSeeker, cfg namematch.Config) (*Database, error) {
	reader, err := dbf.NewReader(r)
	if err != nil {
		return nil, err
	}
	records, err := personnel.LoadAll(reader)
	if err != nil {
		return nil, err
	}
	return New(records, cfg)
}

// New builds a Database over an already-projected set of personnel
// records: loading → projecting happens upstream (Load, or a test
// fixture); New is the bulk-insert-into-all-indexes step of spec §4.5.
func New(records []personnel.Record, cfg namematch.Config) (*Database, error) {
	byID := make(map[string]personnel.Record, len(records))
	performance := bktree.New(namematch.Levenshtein)
	legal := bktree.New(namematch.Levenshtein)
	firstToken := bktree.New(namematch.Levenshtein)
	lastToken := bktree.New(namematch.Levenshtein)

	for _, r := range records {
		if r.IGRANumber == "" {
			return nil, ErrEmptyIGRANumber
		}
		if _, dup := byID[r.IGRANumber]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIGRANumber, r.IGRANumber)
		}
		byID[r.IGRANumber] = r

		performance.Insert(namematch.Normalize(r.PerformanceFirst()+" "+r.PerformanceLast()), r.IGRANumber)
		legal.Insert(namematch.Normalize(r.LegalFirst+" "+r.LegalLast), r.IGRANumber)
		firstToken.Insert(namematch.Normalize(r.LegalFirst), r.IGRANumber)
		lastToken.Insert(namematch.Normalize(r.LegalLast), r.IGRANumber)
	}

	cache, err := lru.New(searchCacheSize)
	if err != nil {
		return nil, err
	}

	db := &Database{byID: byID, search: cache}
	db.matcher = &namematch.Matcher{
		Config:      cfg,
		Performance: performance,
		Legal:       legal,
		FirstToken:  firstToken,
		LastToken:   lastToken,
		Lookup:      (*nameLookup)(db),
	}
	return db, nil
}

// Lookup returns the record with the given IGRA#, or ErrRecordNotFound.
func (db *Database) Lookup(igraNumber string) (personnel.Record, error) {
	r, ok := db.byID[igraNumber]
	if !ok {
		return personnel.Record{}, ErrRecordNotFound
	}
	return r, nil
}

// Size returns the number of records in the database.
func (db *Database) Size() int { return len(db.byID) }

// nameLookup adapts *Database to namematch.Lookup without exposing that
// method set on Database's own public API.
type nameLookup Database

func (n *nameLookup) Names(recordID string) (namematch.Names, bool) {
	r, ok := n.byID[recordID]
	if !ok {
		return namematch.Names{}, false
	}
	return namematch.Names{
		Performance: namematch.Normalize(r.PerformanceFirst() + " " + r.PerformanceLast()),
		Legal:       namematch.Normalize(r.LegalFirst + " " + r.LegalLast),
	}, true
}

func (n *nameLookup) Exists(recordID string) bool {
	_, ok := n.byID[recordID]
	return ok
}
