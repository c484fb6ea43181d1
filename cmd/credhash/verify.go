// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errMismatch reports a well-formed record that does not match the password.
var errMismatch = errors.New("password does not match")

// verifyConfig holds configuration for the verify command.
type verifyConfig struct {
	upgrade bool
}

func newVerifyCmd(opts *rootOptions) *cobra.Command {
	cfg := &verifyConfig{}

	cmd := &cobra.Command{
		Use:   "verify <record> [password|-]",
		Short: "Check a password against a record",
		Long: `Check a password against a stored record of any supported scheme.

Prints "match" or "mismatch". Exit status is 0 on match, 1 on mismatch and 2
if the record is malformed. With --upgrade, a matching record produced by a
scheme other than the configured one is followed by a replacement record.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(cmd, opts, cfg, args)
		},
	}

	cmd.Flags().BoolVar(&cfg.upgrade, "upgrade", false, "print a replacement record when the scheme is outdated")

	return cmd
}

func runVerify(cmd *cobra.Command, opts *rootOptions, cfg *verifyConfig, args []string) error {
	record := args[0]
	password, err := passwordArg(cmd, args, 1)
	if err != nil {
		return err
	}

	ok, err := opts.hasher.Verify(record, password)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if !ok {
		fmt.Fprintln(out, "mismatch")
		return errMismatch
	}
	fmt.Fprintln(out, "match")

	if cfg.upgrade && opts.hasher.NeedsUpgrade(record) {
		upgraded, err := opts.hasher.Hash(password)
		if err != nil {
			return err
		}
		opts.logger.InfoContext(cmd.Context(), "record upgraded", "scheme", string(opts.hasher.Scheme()))
		fmt.Fprintln(out, upgraded)
	}
	return nil
}
