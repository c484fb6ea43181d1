// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/holomush/credhash/internal/credential"
)

// RecordInfo is the decoded view of a record printed by inspect.
type RecordInfo struct {
	Scheme       string `json:"scheme" yaml:"scheme"`
	Salt         string `json:"salt" yaml:"salt"`
	Digest       string `json:"digest" yaml:"digest"`
	SaltBytes    int    `json:"salt_bytes" yaml:"salt_bytes"`
	DigestBytes  int    `json:"digest_bytes" yaml:"digest_bytes"`
	NeedsUpgrade bool   `json:"needs_upgrade" yaml:"needs_upgrade"`
}

// inspectConfig holds configuration for the inspect command.
type inspectConfig struct {
	output string
}

func newInspectCmd(opts *rootOptions) *cobra.Command {
	cfg := &inspectConfig{}

	cmd := &cobra.Command{
		Use:   "inspect <record>",
		Short: "Show the scheme, salt and digest of a record",
		Long: `Decode a record without checking any password.

Salt and digest are printed as lowercase hex regardless of the record's own
encoding. needs_upgrade reports whether the record's scheme differs from the
configured one.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, opts, cfg, args[0])
		},
	}

	cmd.Flags().StringVarP(&cfg.output, "output", "o", "text", "output format (text, json or yaml)")

	return cmd
}

func runInspect(cmd *cobra.Command, opts *rootOptions, cfg *inspectConfig, record string) error {
	rec, err := credential.ParseRecord(record)
	if err != nil {
		return err
	}

	info := RecordInfo{
		Scheme:       string(rec.Scheme),
		Salt:         hex.EncodeToString(rec.Salt),
		Digest:       hex.EncodeToString(rec.Digest),
		SaltBytes:    len(rec.Salt),
		DigestBytes:  len(rec.Digest),
		NeedsUpgrade: opts.hasher.NeedsUpgrade(record),
	}

	out := cmd.OutOrStdout()
	switch cfg.output {
	case "json":
		return writeInfoJSON(out, info)
	case "yaml":
		return writeInfoYAML(out, info)
	case "text":
		return writeInfoTable(out, info)
	default:
		return oops.Code("CLI_INVALID_OUTPUT").With("output", cfg.output).
			Errorf("output must be text, json or yaml, got %q", cfg.output)
	}
}

func writeInfoJSON(w io.Writer, info RecordInfo) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(info); err != nil {
		return oops.With("output", "json").Wrap(err)
	}
	return nil
}

func writeInfoYAML(w io.Writer, info RecordInfo) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return oops.With("output", "yaml").Wrap(err)
	}
	if err := enc.Close(); err != nil {
		return oops.With("output", "yaml").Wrap(err)
	}
	return nil
}

func writeInfoTable(w io.Writer, info RecordInfo) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "SCHEME\t%s\n", info.Scheme)
	fmt.Fprintf(tw, "SALT\t%s (%d bytes)\n", info.Salt, info.SaltBytes)
	fmt.Fprintf(tw, "DIGEST\t%s (%d bytes)\n", info.Digest, info.DigestBytes)
	fmt.Fprintf(tw, "NEEDS UPGRADE\t%t\n", info.NeedsUpgrade)
	return tw.Flush()
}
