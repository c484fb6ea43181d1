// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/holomush/credhash/internal/credential"
	"github.com/holomush/credhash/pkg/errutil"
)

func TestNew(t *testing.T) {
	t.Run("salted-sha256", func(t *testing.T) {
		hasher, err := credential.New("salted-sha256")
		require.NoError(t, err)
		assert.Equal(t, credential.SchemeSaltedSHA256, hasher.Scheme())
	})

	t.Run("argon2id tolerates case and spaces", func(t *testing.T) {
		hasher, err := credential.New(" Argon2id ")
		require.NoError(t, err)
		assert.Equal(t, credential.SchemeArgon2id, hasher.Scheme())
	})

	t.Run("unknown scheme", func(t *testing.T) {
		hasher, err := credential.New("md5")
		require.Error(t, err)
		assert.Nil(t, hasher)
		assert.ErrorIs(t, err, credential.ErrUnknownScheme)
		errutil.AssertErrorCode(t, err, credential.CodeUnknownScheme)
		errutil.AssertErrorContext(t, err, "scheme", "md5")
	})
}

func TestParseScheme(t *testing.T) {
	tests := []struct {
		name   string
		want   credential.Scheme
		wantOK bool
	}{
		{"salted-sha256", credential.SchemeSaltedSHA256, true},
		{"SALTED-SHA256", credential.SchemeSaltedSHA256, true},
		{" Argon2id\t", credential.SchemeArgon2id, true},
		{"", credential.SchemeUnknown, false},
		{"unknown", credential.SchemeUnknown, false},
		{"bcrypt", credential.SchemeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := credential.ParseScheme(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMigratingHasher_VerifiesBothSchemes(t *testing.T) {
	salted, err := credential.NewSaltedHasher().Hash("password")
	require.NoError(t, err)
	argon, err := credential.NewArgon2idHasher().Hash("password")
	require.NoError(t, err)

	for _, scheme := range []string{"salted-sha256", "argon2id"} {
		hasher, err := credential.New(scheme)
		require.NoError(t, err)

		t.Run(scheme, func(t *testing.T) {
			for name, record := range map[string]string{"salted": salted, "argon2id": argon} {
				ok, err := hasher.Verify(record, "password")
				require.NoError(t, err, name)
				assert.True(t, ok, name)

				ok, err = hasher.Verify(record, "Password")
				require.NoError(t, err, name)
				assert.False(t, ok, name)
			}
		})
	}
}

func TestMigratingHasher_Malformed(t *testing.T) {
	hasher, err := credential.New("argon2id")
	require.NoError(t, err)

	_, err = hasher.Verify("short", "anything")
	assert.ErrorIs(t, err, credential.ErrMalformedRecord)

	_, err = hasher.Verify("$argon2id$broken", "anything")
	assert.ErrorIs(t, err, credential.ErrMalformedRecord)
}

func TestMigratingHasher_NeedsUpgrade(t *testing.T) {
	salted, err := credential.NewSaltedHasher().Hash("password")
	require.NoError(t, err)
	argon, err := credential.NewArgon2idHasher().Hash("password")
	require.NoError(t, err)

	// This is a valid bcrypt hash for testing upgrade detection
	bcryptHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIvNq.Uf3hE9tQALNP1Qn9sNp5x5x5x5"

	t.Run("argon2id primary", func(t *testing.T) {
		hasher, err := credential.New("argon2id")
		require.NoError(t, err)
		assert.True(t, hasher.NeedsUpgrade(salted))
		assert.True(t, hasher.NeedsUpgrade(bcryptHash))
		assert.False(t, hasher.NeedsUpgrade(argon))
	})

	t.Run("salted primary", func(t *testing.T) {
		hasher, err := credential.New("salted-sha256")
		require.NoError(t, err)
		assert.False(t, hasher.NeedsUpgrade(salted))
		assert.False(t, hasher.NeedsUpgrade(strings.ToUpper(salted)))
		assert.True(t, hasher.NeedsUpgrade(argon))
	})

	t.Run("upgraded record verifies", func(t *testing.T) {
		hasher, err := credential.New("argon2id")
		require.NoError(t, err)

		ok, err := hasher.Verify(salted, "password")
		require.NoError(t, err)
		require.True(t, ok)

		upgraded, err := hasher.Hash("password")
		require.NoError(t, err)
		assert.False(t, hasher.NeedsUpgrade(upgraded))

		ok, err = hasher.Verify(upgraded, "password")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}
