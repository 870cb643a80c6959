// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli/v2"

	"github.com/saites/igra-converter/internal/rtlog"
)

var searchCommand = cli.Command{
	Action:    runSearch,
	Name:      "search",
	Usage:     "search the personnel database by free-text performance name",
	ArgsUsage: "<performance name>",
	Flags:     []cli.Flag{&dbPathFlag, &tPerfFlag, &tLegalFlag, &tMaxFlag},
}

func runSearch(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return wrapExit(exitUsage, fmt.Errorf("expected exactly one argument: <performance name>"))
	}
	query := ctx.Args().Get(0)

	log := rtlog.New()
	db, err := openDatabase(ctx, log)
	if err != nil {
		return err
	}

	results := db.SearchPerformance(query)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"IGRA#", "Performance Name", "Legal Name", "Association", "City", "Region"})
	for _, r := range results {
		table.Append([]string{
			r.IGRANumber,
			r.PerformanceFirst() + " " + r.PerformanceLast(),
			r.LegalFirst + " " + r.LegalLast,
			r.Association,
			r.City,
			r.Region,
		})
	}
	table.Render()

	return nil
}
