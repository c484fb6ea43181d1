// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHashCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash [password|-]",
		Short: "Create a record for a password",
		Long: `Create a new record for a password using the configured scheme.

The password is read from the first line of stdin when omitted or given as "-".
Every invocation uses a fresh random salt, so hashing the same password twice
yields different records.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := passwordArg(cmd, args, 0)
			if err != nil {
				return err
			}

			record, err := opts.hasher.Hash(password)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), record)
			return err
		},
	}
}
