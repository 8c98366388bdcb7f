package schema_test

import (
	"encoding/json"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/commitlint/internal/schema"
)

var _ = Describe("Generate", func() {
	var s map[string]any

	BeforeEach(func() {
		data, err := schema.GenerateJSON(true)
		Expect(err).NotTo(HaveOccurred())
		Expect(json.Unmarshal(data, &s)).To(Succeed())
	})

	It("sets the $schema URI", func() {
		Expect(s["$schema"]).To(Equal("https://json-schema.org/draft/2020-12/schema"))
	})

	It("sets the title and id", func() {
		Expect(s["title"]).To(Equal("commitlint configuration"))
		Expect(s["$id"]).To(Equal(schema.URL()))
	})

	It("includes top-level properties", func() {
		props, ok := s["properties"].(map[string]any)
		Expect(ok).To(BeTrue())

		for _, key := range []string{
			"version", "extends", "rules", "ignores", "default_ignores", "help_url", "prompt",
		} {
			Expect(props).To(HaveKey(key), "missing top-level property: %s", key)
		}
	})

	Describe("custom type schemas", func() {
		var defs map[string]any

		BeforeEach(func() {
			var ok bool

			defs, ok = s["$defs"].(map[string]any)
			Expect(ok).To(BeTrue(), "$defs should exist")
		})

		It("defines Level as a string or an integer", func() {
			level, ok := defs["Level"].(map[string]any)
			Expect(ok).To(BeTrue(), "Level def should exist")

			oneOf, ok := level["oneOf"].([]any)
			Expect(ok).To(BeTrue())
			Expect(oneOf).To(HaveLen(2))
		})

		It("defines Applicability as string with enum", func() {
			when, ok := defs["Applicability"].(map[string]any)
			Expect(ok).To(BeTrue(), "Applicability def should exist")
			Expect(when["type"]).To(Equal("string"))
			Expect(when["enum"]).To(ConsistOf("always", "never"))
		})

		It("defines CaseMode as string with enum", func() {
			mode, ok := defs["CaseMode"].(map[string]any)
			Expect(ok).To(BeTrue(), "CaseMode def should exist")
			Expect(mode["enum"]).To(ContainElements("lower-case", "kebab-case", "sentence-case"))
		})

		It("defines Limit with the unbounded keyword", func() {
			limit, ok := defs["Limit"].(map[string]any)
			Expect(ok).To(BeTrue(), "Limit def should exist")

			data, err := json.Marshal(limit)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("unbounded"))
		})
	})

	It("describes rule entries", func() {
		rule := navigateProps(s, s, "rules")
		Expect(rule).NotTo(BeNil())

		items, ok := rule["additionalProperties"].(map[string]any)
		Expect(ok).To(BeTrue())

		resolved := resolveRef(items, s)
		Expect(resolved).NotTo(BeNil())
		Expect(resolved["properties"]).To(HaveKey("level"))
		Expect(resolved["properties"]).To(HaveKey("when"))
		Expect(resolved["properties"]).To(HaveKey("values"))
	})

	It("describes prompt fields", func() {
		prompt := navigateProps(s, s, "prompt")
		Expect(prompt).NotTo(BeNil())
		Expect(prompt["properties"]).To(HaveKey("max_header_length"))
		Expect(prompt["properties"]).To(HaveKey("issue_prefixes"))
	})

	Describe("GenerateJSON", func() {
		It("produces compact JSON when indent is false", func() {
			data, err := schema.GenerateJSON(false)
			Expect(err).NotTo(HaveOccurred())

			// Compact JSON is a single line plus trailing newline
			Expect(strings.Count(string(data), "\n")).To(Equal(1))
		})

		It("produces indented JSON when indent is true", func() {
			data, err := schema.GenerateJSON(true)
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Count(string(data), "\n")).To(BeNumerically(">", 10))
		})
	})

	Describe("SchemaDirective", func() {
		It("points at the versioned schema file", func() {
			Expect(schema.Filename()).To(Equal("commitlint.v1.schema.json"))
			Expect(schema.SchemaDirective()).To(HavePrefix("#:schema https://"))
			Expect(schema.SchemaDirective()).To(HaveSuffix(schema.Filename()))
		})
	})
})

// navigateProps follows a property path through a schema, resolving $refs as needed.
func navigateProps(current, root map[string]any, keys ...string) map[string]any {
	for _, key := range keys {
		resolved := resolveRef(current, root)
		if resolved == nil {
			return nil
		}

		props, ok := resolved["properties"].(map[string]any)
		if !ok {
			return nil
		}

		next, ok := props[key].(map[string]any)
		if !ok {
			return nil
		}

		current = next
	}

	return resolveRef(current, root)
}

// resolveRef follows a $ref if present in the schema node.
func resolveRef(node, root map[string]any) map[string]any {
	ref, ok := node["$ref"].(string)
	if !ok {
		return node
	}

	const prefix = "#/$defs/"
	if !strings.HasPrefix(ref, prefix) {
		return nil
	}

	defs, ok := root["$defs"].(map[string]any)
	if !ok {
		return nil
	}

	resolved, ok := defs[strings.TrimPrefix(ref, prefix)].(map[string]any)
	if !ok {
		return nil
	}

	return resolved
}
