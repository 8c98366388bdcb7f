package commit_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/commitlint/pkg/commit"
)

var _ = Describe("Parse", func() {
	Describe("header", func() {
		It("splits type, scope and subject", func() {
			c := commit.Parse("feat(api): add user endpoint")

			Expect(c.Header).To(Equal("feat(api): add user endpoint"))
			Expect(c.Type).To(Equal("feat"))
			Expect(c.Scope).To(Equal("api"))
			Expect(c.Scopes).To(Equal([]string{"api"}))
			Expect(c.Subject).To(Equal("add user endpoint"))
			Expect(c.Breaking).To(BeFalse())
		})

		It("handles a missing scope", func() {
			c := commit.Parse("fix: handle nil pointer")

			Expect(c.Type).To(Equal("fix"))
			Expect(c.Scope).To(BeEmpty())
			Expect(c.Scopes).To(BeNil())
			Expect(c.Subject).To(Equal("handle nil pointer"))
		})

		It("detects the breaking mark", func() {
			c := commit.Parse("refactor(db)!: drop legacy tables")

			Expect(c.Breaking).To(BeTrue())
			Expect(c.Type).To(Equal("refactor"))
		})

		DescribeTable("splits multiple scopes",
			func(header string, expected []string) {
				Expect(commit.Parse(header).Scopes).To(Equal(expected))
			},
			Entry("comma", "feat(api,auth): x", []string{"api", "auth"}),
			Entry("comma and space", "feat(api, auth): x", []string{"api", "auth"}),
			Entry("slash", "feat(api/auth): x", []string{"api", "auth"}),
			Entry("backslash", `feat(api\auth): x`, []string{"api", "auth"}),
		)

		It("keeps an empty subject when the description is missing", func() {
			c := commit.Parse("feat: ")

			Expect(c.Type).To(Equal("feat"))
			Expect(c.Subject).To(BeEmpty())
		})

		It("leaves fields empty for non-conventional headers", func() {
			c := commit.Parse("added some stuff")

			Expect(c.Header).To(Equal("added some stuff"))
			Expect(c.Type).To(BeEmpty())
			Expect(c.Subject).To(BeEmpty())
		})

		It("flags merge and revert headers", func() {
			Expect(commit.Parse("Merge branch 'main' into dev").Merge).To(BeTrue())
			Expect(commit.Parse(`Revert "feat: x"`).Revert).To(BeTrue())
			Expect(commit.Parse("revert: feat: x").Revert).To(BeTrue())
		})
	})

	Describe("body and footer", func() {
		It("separates body from footer", func() {
			c := commit.Parse("fix(auth): expire tokens\n\nTokens now expire after an hour.\nSee the docs.\n\nCloses #31, #34\nSigned-off-by: Jane <jane@example.com>")

			Expect(c.Body).To(Equal("Tokens now expire after an hour.\nSee the docs."))
			Expect(c.BodyLeadingBlank).To(BeTrue())
			Expect(c.Footer).To(Equal("Closes #31, #34\nSigned-off-by: Jane <jane@example.com>"))
			Expect(c.FooterLeadingBlank).To(BeTrue())
			Expect(c.References).To(Equal([]string{"#31", "#34"}))
			Expect(c.Trailers).To(ContainElement(commit.Trailer{Token: "Signed-off-by", Value: "Jane <jane@example.com>"}))
		})

		It("records breaking change notes", func() {
			c := commit.Parse("feat: new api\n\nBREAKING CHANGE: the old endpoint is gone")

			Expect(c.Breaking).To(BeTrue())
			Expect(c.Notes).To(Equal([]string{"the old endpoint is gone"}))
			Expect(c.Body).To(BeEmpty())
		})

		It("detects a body without leading blank line", func() {
			c := commit.Parse("feat: x\nbody right after header")

			Expect(c.Body).To(Equal("body right after header"))
			Expect(c.BodyLeadingBlank).To(BeFalse())
		})

		It("does not treat trailer-like lines inside a paragraph as footer", func() {
			c := commit.Parse("feat: x\n\nsome text\nSigned-off-by: nobody here")

			Expect(c.Footer).To(BeEmpty())
			Expect(c.Body).To(Equal("some text\nSigned-off-by: nobody here"))
		})

		It("accepts the prompt issue prefix form", func() {
			c := commit.Parse("fix: x\n\nclosed: #12")

			Expect(c.References).To(Equal([]string{"#12"}))
		})
	})

	Describe("Clean", func() {
		It("drops comments and the scissors section", func() {
			raw := "\n\nfeat: x\n# Please enter the commit message\n\nbody\n" +
				commit.ScissorsLine + "\ndiff --git a/x b/x\n"

			Expect(commit.Clean(raw)).To(Equal([]string{"feat: x", "", "body"}))
		})

		It("normalizes CRLF", func() {
			Expect(commit.Clean("feat: x\r\n\r\nbody\r\n")).To(Equal([]string{"feat: x", "", "body"}))
		})

		It("returns an empty commit for blank input", func() {
			c := commit.Parse("  \n\n# only comments\n")

			Expect(c.Header).To(BeEmpty())
			Expect(c.Raw).To(BeEmpty())
		})
	})
})
