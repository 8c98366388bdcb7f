package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/smykla-skalski/commitlint/internal/schema"
	"github.com/smykla-skalski/commitlint/pkg/config"
)

var _ = Describe("Writer", func() {
	var (
		homeDir string
		workDir string
		writer  *Writer
	)

	BeforeEach(func() {
		tmpDir := GinkgoT().TempDir()
		homeDir = filepath.Join(tmpDir, "home")
		workDir = filepath.Join(tmpDir, "work")

		Expect(os.MkdirAll(homeDir, 0o700)).To(Succeed())
		Expect(os.MkdirAll(workDir, 0o700)).To(Succeed())

		writer = NewWriterWithDirs(homeDir, workDir)
	})

	It("rejects a nil config", func() {
		err := writer.WriteProject(nil)
		Expect(errors.Is(err, ErrInvalidConfig)).To(BeTrue())
	})

	It("writes the project file with secure permissions", func() {
		Expect(writer.WriteProject(DefaultConfig())).To(Succeed())
		Expect(writer.IsProjectConfigExists()).To(BeTrue())

		info, err := os.Stat(writer.ProjectConfigPath())
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Mode().Perm()).To(Equal(os.FileMode(ConfigFileMode)))

		dirInfo, err := os.Stat(filepath.Dir(writer.ProjectConfigPath()))
		Expect(err).NotTo(HaveOccurred())
		Expect(dirInfo.Mode().Perm()).To(Equal(os.FileMode(ConfigDirMode)))
	})

	It("writes the global file under the home directory", func() {
		Expect(writer.WriteGlobal(&config.Config{HelpURL: "x"})).To(Succeed())
		Expect(writer.GlobalConfigPath()).To(Equal(filepath.Join(homeDir, ".commitlint", "config.toml")))
		Expect(writer.IsGlobalConfigExists()).To(BeTrue())
	})

	It("starts the file with the schema directive", func() {
		Expect(writer.WriteProject(DefaultConfig())).To(Succeed())

		data, err := os.ReadFile(writer.ProjectConfigPath())
		Expect(err).NotTo(HaveOccurred())

		firstLine, _, _ := strings.Cut(string(data), "\n")
		Expect(firstLine).To(Equal(schema.SchemaDirective()))
	})

	It("replaces an existing file without leaving temporary files", func() {
		Expect(writer.WriteProject(DefaultConfig())).To(Succeed())

		cfg := DefaultConfig()
		cfg.HelpURL = "https://example.com/replaced"
		Expect(writer.WriteProject(cfg)).To(Succeed())

		entries, err := os.ReadDir(filepath.Dir(writer.ProjectConfigPath()))
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))

		data, err := os.ReadFile(writer.ProjectConfigPath())
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(ContainSubstring("https://example.com/replaced"))
	})

	It("refuses to overwrite without force", func() {
		path := writer.ProjectConfigPath()
		Expect(writer.WriteNew(path, DefaultConfig(), false)).To(Succeed())

		err := writer.WriteNew(path, DefaultConfig(), false)
		Expect(errors.Is(err, ErrConfigExists)).To(BeTrue())

		Expect(writer.WriteNew(path, DefaultConfig(), true)).To(Succeed())
	})

	Describe("NewWriter", func() {
		It("resolves the home and working directories", func() {
			GinkgoT().Setenv("HOME", homeDir)

			w, err := NewWriter()
			Expect(err).NotTo(HaveOccurred())
			Expect(w.GlobalConfigPath()).To(Equal(filepath.Join(homeDir, ".commitlint", "config.toml")))

			wd, err := os.Getwd()
			Expect(err).NotTo(HaveOccurred())
			Expect(w.ProjectConfigPath()).To(Equal(filepath.Join(wd, ".commitlint", "config.toml")))
		})
	})

	Describe("Encode", func() {
		It("writes finite prompt limits in a form the schema accepts", func() {
			cfg := DefaultConfig()
			cfg.Prompt.MaxSubjectLength = 60

			data, err := Encode(cfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring("max_subject_length = '60'"))
			Expect(string(data)).To(ContainSubstring("max_header_length = 'unbounded'"))

			limitSchema := config.Limit(0).JSONSchema()
			Expect(limitSchema.OneOf).To(ContainElement(HaveField("Pattern", "^[0-9]+$")))
		})
	})

	Describe("round trip", func() {
		It("decodes the written defaults to an identical config", func() {
			Expect(writer.WriteProject(DefaultConfig())).To(Succeed())

			loaded, err := NewKoanfLoaderWithDirs(homeDir, workDir).Load(nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(DefaultConfig()))
		})

		It("preserves customized values", func() {
			cfg := DefaultConfig()
			cfg.HelpURL = "https://example.com"
			cfg.DefaultIgnores = config.BoolPtr(false)
			cfg.Rules[config.RuleSubjectMaxLength].Limit = config.IntPtr(64)
			cfg.Rules[config.RuleBodyEmpty] = &config.Rule{Level: config.LevelWarning, When: config.Never}
			cfg.Prompt.MaxSubjectLength = 60
			cfg.Prompt.ScopeOverrides = map[string][]config.Choice{
				"fix": {{Value: "db"}, {Value: "api", Name: "API"}},
			}

			path := filepath.Join(workDir, "custom.toml")
			Expect(writer.WriteFile(path, cfg)).To(Succeed())

			loaded, err := NewKoanfLoaderWithDirs(homeDir, workDir).LoadFile(path, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})
	})
})
