// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package main

import (
	"errors"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/saites/igra-converter/internal/rtlog"
	"github.com/saites/igra-converter/namematch"
	"github.com/saites/igra-converter/registry"
)

var dbPathFlag = cli.StringFlag{
	Name:     "personnel-db",
	Usage:    "path to the IGRA personnel dBase III Plus file",
	Required: true,
}

var (
	tPerfFlag = cli.IntFlag{
		Name:  "tolerance-performance",
		Usage: "BK-tree lookup tolerance for the performance-name index",
		Value: namematch.DefaultTPerf,
	}
	tLegalFlag = cli.IntFlag{
		Name:  "tolerance-legal",
		Usage: "BK-tree lookup tolerance for the legal-name index",
		Value: namematch.DefaultTLegal,
	}
	tMaxFlag = cli.Float64Flag{
		Name:  "max-score",
		Usage: "candidates scoring worse than this are discarded",
		Value: namematch.DefaultTMax,
	}
)

func matcherConfig(ctx *cli.Context) namematch.Config {
	return namematch.Config{
		TPerf:  ctx.Int(tPerfFlag.Name),
		TLegal: ctx.Int(tLegalFlag.Name),
		TMax:   ctx.Float64(tMaxFlag.Name),
	}
}

// openDatabase loads the personnel database named by dbPathFlag, logging
// progress the way the teacher's state-cli tools report long-running file
// operations.
func openDatabase(ctx *cli.Context, log *rtlog.Log) (*registry.Database, error) {
	path := ctx.String(dbPathFlag.Name)
	log.Printf("loading personnel database from %s ...", path)
	db, err := registry.Load(path, matcherConfig(ctx))
	if err != nil {
		var pathErr *os.PathError
		if errors.As(err, &pathErr) {
			return nil, wrapExit(exitFileIO, err)
		}
		return nil, wrapExit(exitValidationLoad, err)
	}
	log.Printf("loaded %d personnel records", db.Size())
	return db, nil
}
