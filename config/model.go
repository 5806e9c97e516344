package config

import "fmt"

type Provider string

const (
	ProviderGroq      Provider = "groq"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
	ProviderAnthropic Provider = "anthropic"
)

// SupportedModels maps provider to their supported model names.
// The keys are the variable names used in HCL references (e.g.,
// models.groq.qwen3_32b); the values are the wire names sent to the API.
var SupportedModels = map[Provider]map[string]string{
	ProviderGroq: {
		"qwen3_32b":     "qwen/qwen3-32b",
		"llama_3_3_70b": "llama-3.3-70b-versatile",
		"llama_3_1_8b":  "llama-3.1-8b-instant",
		"gpt_oss_120b":  "openai/gpt-oss-120b",
	},
	ProviderOpenAI: {
		"gpt_4o":      "gpt-4o",
		"gpt_4o_mini": "gpt-4o-mini",
		"gpt_4_turbo": "gpt-4-turbo",
		"o1":          "o1",
		"o1_mini":     "o1-mini",
		"o3_mini":     "o3-mini",
	},
	ProviderGemini: {
		"gemini_2_0_flash":     "gemini-2.0-flash",
		"gemini_1_5_pro":       "gemini-1.5-pro",
		"gemini_1_5_flash":     "gemini-1.5-flash",
		"gemini_2_0_flash_exp": "gemini-2.0-flash-exp",
	},
	ProviderAnthropic: {
		"claude_sonnet_4":   "claude-sonnet-4-20250514",
		"claude_opus_4":     "claude-opus-4-20250514",
		"claude_3_5_haiku":  "claude-3-5-haiku-20241022",
		"claude_3_5_sonnet": "claude-3-5-sonnet-20241022",
	},
}

// Model represents a model provider configuration
type Model struct {
	Name          string   `hcl:"name,label"`
	Provider      Provider `hcl:"provider"`
	AllowedModels []string `hcl:"allowed_models"`
	APIKey        string   `hcl:"api_key"`
}

func (m *Model) Validate() error {
	supportedForProvider, ok := SupportedModels[m.Provider]
	if !ok {
		return fmt.Errorf("provider '%s' is not supported", m.Provider)
	}

	for _, modelKey := range m.AllowedModels {
		if _, ok := supportedForProvider[modelKey]; !ok {
			return fmt.Errorf("model '%s' is not supported for provider '%s'. Supported models: %v", modelKey, m.Provider, getKeys(supportedForProvider))
		}
	}

	if m.APIKey == "" {
		return fmt.Errorf("api_key resolved empty; set the variable in the vars file or environment")
	}

	return nil
}

// WireModels returns the API model names this block allows.
func (m *Model) WireModels() []string {
	supported := SupportedModels[m.Provider]
	names := make([]string, 0, len(m.AllowedModels))
	for _, key := range m.AllowedModels {
		if wire, ok := supported[key]; ok {
			names = append(names, wire)
		}
	}
	return names
}

// ModelFor finds the model block that allows the given wire model name
// (e.g. "qwen/qwen3-32b").
func (c *Config) ModelFor(wire string) (*Model, error) {
	for i := range c.Models {
		for _, w := range c.Models[i].WireModels() {
			if w == wire {
				return &c.Models[i], nil
			}
		}
	}
	return nil, fmt.Errorf("no model block allows '%s'", wire)
}

func getKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}
