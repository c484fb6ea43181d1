// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 HoloMUSH Contributors

package credential_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/holomush/credhash/internal/credential"
)

var passwords = []string{
	"",
	"a",
	"my_secure_password",
	"correct horse battery staple",
	"пароль",
	"密码🔑",
	"trailing space ",
	"tab\tand\nnewline",
	strings.Repeat("long", 256),
}

var _ = Describe("Credential hashers", func() {
	DescribeTable("round trip",
		func(newHasher func() credential.Hasher) {
			hasher := newHasher()
			for _, p := range passwords {
				record, err := hasher.Hash(p)
				Expect(err).NotTo(HaveOccurred())

				ok, err := hasher.Verify(record, p)
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue(), "password %q should verify", p)
			}
		},
		Entry("salted-sha256", func() credential.Hasher { return credential.NewSaltedHasher() }),
		Entry("argon2id", func() credential.Hasher { return credential.NewArgon2idHasher() }),
	)

	Describe("salted-sha256 records", func() {
		var hasher *credential.SaltedHasher

		BeforeEach(func() {
			hasher = credential.NewSaltedHasher()
		})

		It("rejects every other password", func() {
			for i, p1 := range passwords {
				record, err := hasher.Hash(p1)
				Expect(err).NotTo(HaveOccurred())

				for j, p2 := range passwords {
					if i == j {
						continue
					}
					ok, err := hasher.Verify(record, p2)
					Expect(err).NotTo(HaveOccurred())
					Expect(ok).To(BeFalse(), "%q must not verify against record of %q", p2, p1)
				}
			}
		})

		It("uses a fresh salt for every record", func() {
			seen := map[string]struct{}{}
			for range 100 {
				record, err := hasher.Hash("my_secure_password")
				Expect(err).NotTo(HaveOccurred())
				Expect(seen).NotTo(HaveKey(record[:credential.SaltHexLen]))
				seen[record[:credential.SaltHexLen]] = struct{}{}

				ok, err := hasher.Verify(record, "my_secure_password")
				Expect(err).NotTo(HaveOccurred())
				Expect(ok).To(BeTrue())
			}
		})

		It("always has the fixed layout", func() {
			for _, p := range passwords {
				record, err := hasher.Hash(p)
				Expect(err).NotTo(HaveOccurred())
				Expect(record).To(HaveLen(96))
				Expect(record).To(MatchRegexp(`^[0-9a-f]{96}$`))
				Expect(credential.Detect(record)).To(Equal(credential.SchemeSaltedSHA256))
			}
		})

		It("fails short records with a malformed record error instead of returning true", func() {
			for n := range credential.SaltHexLen {
				ok, err := hasher.Verify(strings.Repeat("0", n), "anything")
				Expect(err).To(MatchError(credential.ErrMalformedRecord))
				Expect(ok).To(BeFalse())
			}
		})

		It("gives the same answer every time", func() {
			record, err := hasher.Hash("my_secure_password")
			Expect(err).NotTo(HaveOccurred())

			for range 10 {
				Expect(hasher.Verify(record, "my_secure_password")).To(BeTrue())
				Expect(hasher.Verify(record, "wrong_password")).To(BeFalse())
			}
		})
	})
})
