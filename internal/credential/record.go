// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential

import (
	"encoding/hex"
	"strings"
)

// Record is the decoded view of a stored record.
type Record struct {
	Scheme Scheme
	Salt   []byte
	Digest []byte
}

// Detect reports which scheme produced record. It only looks at the shape of
// the record and does not validate argon2id parameters.
func Detect(record string) Scheme {
	switch {
	case strings.HasPrefix(record, argon2idPrefix):
		return SchemeArgon2id
	case len(record) == RecordLen && isHex(record):
		return SchemeSaltedSHA256
	default:
		return SchemeUnknown
	}
}

// ParseRecord decodes record into its salt and digest.
//
// ParseRecord is stricter than Verify: a salted-sha256 record must be exactly
// RecordLen hex characters.
func ParseRecord(record string) (Record, error) {
	if strings.HasPrefix(record, argon2idPrefix) {
		phc, err := parsePHC(record)
		if err != nil {
			return Record{}, err
		}
		return Record{Scheme: SchemeArgon2id, Salt: phc.salt, Digest: phc.key}, nil
	}

	salt, err := decodeSalt(record)
	if err != nil {
		return Record{}, err
	}

	tail := record[SaltHexLen:]
	if len(tail) != 2*DigestLen {
		return Record{}, malformedRecord(SchemeSaltedSHA256, record,
			"digest has %d characters, want %d", len(tail), 2*DigestLen)
	}

	digest, err := hex.DecodeString(tail)
	if err != nil {
		return Record{}, malformedRecord(SchemeSaltedSHA256, record, "digest is not hex: %v", err)
	}

	return Record{Scheme: SchemeSaltedSHA256, Salt: salt, Digest: digest}, nil
}

func isHex(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}
