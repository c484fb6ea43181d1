// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// Salt 00..0f, password "my_secure_password".
const knownRecord = "000102030405060708090a0b0c0d0e0fe5beeb8c08891a8fdca44594095e2d84cb2471ef02aa7272c6801851008be107"

func TestInspect_Text(t *testing.T) {
	res := execute(t, "", "inspect", knownRecord)
	require.Equal(t, exitOK, res.code, res.stderr)

	assert.Contains(t, res.stdout, "salted-sha256")
	assert.Contains(t, res.stdout, "000102030405060708090a0b0c0d0e0f (16 bytes)")
	assert.Contains(t, res.stdout, "(32 bytes)")
	assert.Contains(t, res.stdout, "false")
}

func TestInspect_JSON(t *testing.T) {
	res := execute(t, "", "inspect", "--output", "json", knownRecord)
	require.Equal(t, exitOK, res.code, res.stderr)

	var info RecordInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	assert.Equal(t, "salted-sha256", info.Scheme)
	assert.Equal(t, knownRecord[:32], info.Salt)
	assert.Equal(t, knownRecord[32:], info.Digest)
	assert.Equal(t, 16, info.SaltBytes)
	assert.Equal(t, 32, info.DigestBytes)
	assert.False(t, info.NeedsUpgrade)
}

func TestInspect_YAML(t *testing.T) {
	res := execute(t, "", "--scheme", "argon2id", "inspect", "-o", "yaml", knownRecord)
	require.Equal(t, exitOK, res.code, res.stderr)

	var info RecordInfo
	require.NoError(t, yaml.Unmarshal([]byte(res.stdout), &info))
	assert.Equal(t, "salted-sha256", info.Scheme)
	assert.True(t, info.NeedsUpgrade)
}

func TestInspect_Argon2id(t *testing.T) {
	hashed := execute(t, "", "--scheme", "argon2id", "hash", "pw")
	require.Equal(t, exitOK, hashed.code)

	res := execute(t, "", "--scheme", "argon2id", "inspect", "-o", "json", firstLine(hashed.stdout))
	require.Equal(t, exitOK, res.code, res.stderr)

	var info RecordInfo
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &info))
	assert.Equal(t, "argon2id", info.Scheme)
	assert.Equal(t, 16, info.SaltBytes)
	assert.Equal(t, 32, info.DigestBytes)
	assert.False(t, info.NeedsUpgrade)
}

func TestInspect_Errors(t *testing.T) {
	t.Run("malformed record", func(t *testing.T) {
		res := execute(t, "", "inspect", knownRecord[:90])
		assert.Equal(t, exitError, res.code)
		assert.Contains(t, res.stderr, "malformed record")
	})

	t.Run("unknown output", func(t *testing.T) {
		res := execute(t, "", "inspect", "-o", "xml", knownRecord)
		assert.Equal(t, exitError, res.code)
		assert.Contains(t, res.stderr, "output must be")
	})
}
