package config_test

import (
	"taskforce/config"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Model", func() {

	Describe("parsing", func() {
		It("parses a groq model block", func() {
			hcl := minimalVarsHCL() + `
model "groq" {
  provider       = "groq"
  allowed_models = ["qwen3_32b", "llama_3_3_70b"]
  api_key        = vars.test_api_key
}
`
			_, f := writeFixture("config.hcl", hcl)
			cfg, err := config.LoadFile(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Models).To(HaveLen(1))
			Expect(cfg.Models[0].Name).To(Equal("groq"))
			Expect(cfg.Models[0].Provider).To(Equal(config.ProviderGroq))
			Expect(cfg.Models[0].AllowedModels).To(ConsistOf("qwen3_32b", "llama_3_3_70b"))
			Expect(cfg.Models[0].APIKey).To(Equal("test-key-123"))
		})

		It("parses models for all four providers", func() {
			hcl := `
variable "key" { default = "k" }
model "groq" {
  provider       = "groq"
  allowed_models = ["qwen3_32b"]
  api_key        = vars.key
}
model "openai" {
  provider       = "openai"
  allowed_models = ["gpt_4o"]
  api_key        = vars.key
}
model "gemini" {
  provider       = "gemini"
  allowed_models = ["gemini_2_0_flash"]
  api_key        = vars.key
}
model "anthropic" {
  provider       = "anthropic"
  allowed_models = ["claude_sonnet_4"]
  api_key        = vars.key
}
`
			_, f := writeFixture("config.hcl", hcl)
			cfg, err := config.LoadFile(f)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Models).To(HaveLen(4))
		})
	})

	Describe("Validate", func() {
		It("rejects an unsupported provider", func() {
			m := config.Model{
				Name:          "bad",
				Provider:      "llama",
				AllowedModels: []string{"llama_7b"},
				APIKey:        "k",
			}
			err := m.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("not supported"))
		})

		It("rejects an unsupported model key for a valid provider", func() {
			m := config.Model{
				Name:          "groq",
				Provider:      config.ProviderGroq,
				AllowedModels: []string{"qwen3_32b", "nonexistent_model"},
				APIKey:        "k",
			}
			err := m.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("nonexistent_model"))
		})

		It("rejects an empty api_key", func() {
			m := config.Model{
				Name:          "groq",
				Provider:      config.ProviderGroq,
				AllowedModels: []string{"qwen3_32b"},
			}
			err := m.Validate()
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("api_key"))
		})

		It("accepts all supported groq model keys", func() {
			m := config.Model{
				Name:          "groq",
				Provider:      config.ProviderGroq,
				AllowedModels: []string{"qwen3_32b", "llama_3_3_70b", "llama_3_1_8b", "gpt_oss_120b"},
				APIKey:        "k",
			}
			Expect(m.Validate()).To(Succeed())
		})
	})

	Describe("WireModels", func() {
		It("maps HCL keys to wire names", func() {
			m := config.Model{
				Provider:      config.ProviderGroq,
				AllowedModels: []string{"qwen3_32b", "llama_3_3_70b"},
			}
			Expect(m.WireModels()).To(ConsistOf("qwen/qwen3-32b", "llama-3.3-70b-versatile"))
		})
	})

	Describe("ModelFor", func() {
		It("finds the block that allows a wire model", func() {
			cfg := &config.Config{
				Models: []config.Model{
					{Name: "groq", Provider: config.ProviderGroq, AllowedModels: []string{"qwen3_32b"}, APIKey: "k"},
				},
			}
			m, err := cfg.ModelFor("qwen/qwen3-32b")
			Expect(err).NotTo(HaveOccurred())
			Expect(m.Name).To(Equal("groq"))
		})

		It("errors when no block allows the model", func() {
			cfg := &config.Config{}
			_, err := cfg.ModelFor("qwen/qwen3-32b")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("qwen/qwen3-32b"))
		})
	})
})
