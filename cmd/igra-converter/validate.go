// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/saites/igra-converter/internal/rtlog"
	"github.com/saites/igra-converter/registration"
	"github.com/saites/igra-converter/validate"
)

var batchPathFlag = cli.StringFlag{
	Name:     "batch",
	Usage:    "path to the completed_registrations JSON document",
	Required: true,
}

var outPathFlag = cli.StringFlag{
	Name:  "out",
	Usage: "write the Report JSON here instead of stdout",
}

var minAgeFlag = cli.IntFlag{
	Name:  "min-age",
	Usage: "minimum contestant age in years",
	Value: validate.DefaultConfig().MinAge,
}

var minRoundsFlag = cli.IntFlag{
	Name:  "min-go-rounds",
	Usage: "minimum total go-rounds across any events",
	Value: validate.DefaultConfig().MinGoRounds,
}

var topNFlag = cli.IntFlag{
	Name:  "top-candidates",
	Usage: "cap on UseThisRecord fixes emitted per ambiguous match",
	Value: validate.DefaultConfig().TopNCandidates,
}

var validateCommand = cli.Command{
	Action:    runValidate,
	Name:      "validate",
	Usage:     "validate a batch of registrations against the personnel database",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&dbPathFlag, &tPerfFlag, &tLegalFlag, &tMaxFlag,
		&batchPathFlag, &outPathFlag,
		&minAgeFlag, &minRoundsFlag, &topNFlag,
	},
}

func runValidate(ctx *cli.Context) error {
	log := rtlog.New()

	db, err := openDatabase(ctx, log)
	if err != nil {
		return err
	}

	batchFile, err := os.Open(ctx.String(batchPathFlag.Name))
	if err != nil {
		return wrapExit(exitFileIO, err)
	}
	defer batchFile.Close()

	batch, err := registration.DecodeBatch(batchFile)
	if err != nil {
		return wrapExit(exitValidationLoad, err)
	}

	log.Printf("validating %d registrations ...", len(batch.CompletedRegistrations))
	cfg := validate.Config{
		MinAge:         ctx.Int(minAgeFlag.Name),
		MinGoRounds:    ctx.Int(minRoundsFlag.Name),
		TopNCandidates: ctx.Int(topNFlag.Name),
	}
	report := validate.Run(batch, db, cfg)

	out := os.Stdout
	if path := ctx.String(outPathFlag.Name); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return wrapExit(exitFileIO, err)
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return wrapExit(exitFileIO, fmt.Errorf("writing report: %w", err))
	}

	log.Print("validation complete")
	return nil
}
