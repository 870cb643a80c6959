// Copyright (c) 2026 The igra-converter Authors
//
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Command igra-converter validates submitted rodeo registrations against
// the IGRA personnel database, and offers a free-text name search over
// that database.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Exit codes, per spec §6.
const (
	exitSuccess         = 0
	exitUsage           = 1
	exitFileIO          = 2
	exitValidationLoad  = 3
)

func main() {
	app := &cli.App{
		Name:      "igra-converter",
		HelpName:  "igra-converter",
		Usage:     "validate rodeo registrations against the IGRA personnel database",
		Copyright: "(c) 2026 The igra-converter Authors",
		Commands: []*cli.Command{
			&validateCommand,
			&searchCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps an error returned from a command's Action to the exit
// code spec §6 documents. Commands wrap errors in cliError to select a
// non-default code; anything else is a usage error.
func exitCodeFor(err error) int {
	var ce *cliError
	if errors.As(err, &ce) {
		return ce.code
	}
	return exitUsage
}

// cliError pairs an error with the process exit code it should produce.
type cliError struct {
	code int
	err  error
}

func (e *cliError) Error() string { return e.err.Error() }
func (e *cliError) Unwrap() error { return e.err }

func wrapExit(code int, err error) error {
	if err == nil {
		return nil
	}
	return &cliError{code: code, err: err}
}
