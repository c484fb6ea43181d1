// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
)

const defaultDemoPassword = "my_secure_password"

// demoConfig holds configuration for the demo command.
type demoConfig struct {
	password string
	metrics  bool
}

func newDemoCmd(opts *rootOptions) *cobra.Command {
	cfg := &demoConfig{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Hash a password and verify it, showing each step",
		Long: `Walk through a full round trip with the configured scheme: hash a
password, verify it, verify a wrong password and verify a malformed record.

With --metrics, the Prometheus metrics recorded during the run are printed
in text exposition format.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts, cfg)
		},
	}

	cmd.Flags().StringVar(&cfg.password, "password", defaultDemoPassword, "password to hash")
	cmd.Flags().BoolVar(&cfg.metrics, "metrics", false, "print recorded metrics")

	return cmd
}

func runDemo(out io.Writer, opts *rootOptions, cfg *demoConfig) error {
	record, err := opts.hasher.Hash(cfg.password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Hashed password: %s\n", record)

	ok, err := opts.hasher.Verify(record, cfg.password)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Password is correct: %t\n", ok)

	ok, err = opts.hasher.Verify(record, cfg.password+"_wrong")
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrong password is correct: %t\n", ok)

	_, err = opts.hasher.Verify("short", cfg.password)
	fmt.Fprintf(out, "Malformed record: %v\n", err)

	if cfg.metrics {
		return writeMetrics(out, opts.registry)
	}
	return nil
}

func writeMetrics(out io.Writer, gatherer prometheus.Gatherer) error {
	families, err := gatherer.Gather()
	if err != nil {
		return oops.With("operation", "gather_metrics").Wrap(err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(out, mf); err != nil {
			return oops.With("operation", "write_metrics").Wrap(err)
		}
	}
	return nil
}
