package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

//go:embed default.hcl
var defaultHCL []byte

// Config holds all configuration
type Config struct {
	Variables []Variable     `hcl:"variable,block"`
	Models    []Model        `hcl:"model,block"`
	Storage   *StorageConfig `hcl:"storage,block"`
	Server    *ServerConfig  `hcl:"server,block"`

	// ResolvedVars holds the resolved variable values for runtime use
	ResolvedVars map[string]cty.Value `hcl:"-"`
}

func Load(path string) (*Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}

// LoadAndValidate loads the config and validates all components
func LoadAndValidate(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default returns the embedded configuration used when no config file is
// given: a single groq model block keyed off the groq_api_key variable.
func Default() (*Config, error) {
	return loadFromSources([]source{{name: "default.hcl", data: defaultHCL}})
}

// Validate checks that all config components are valid
func (c *Config) Validate() error {
	for _, v := range c.Variables {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("variable '%s': %w", v.Name, err)
		}
	}

	for _, m := range c.Models {
		if err := m.Validate(); err != nil {
			return fmt.Errorf("model '%s': %w", m.Name, err)
		}
	}

	return nil
}

func LoadFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return loadFromSources([]source{{name: filename, data: data}})
}

func LoadDir(dir string) (*Config, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.hcl"))
	if err != nil {
		return nil, err
	}

	var sources []source
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source{name: file, data: data})
	}
	return loadFromSources(sources)
}

type source struct {
	name string
	data []byte
}

// parsedBlocks holds all blocks extracted from a file in one pass
type parsedBlocks struct {
	Variables []*hcl.Block
	Models    []*hcl.Block
	Storage   []*hcl.Block
	Server    []*hcl.Block
}

// loadFromSources implements staged loading: variables → everything else
func loadFromSources(sources []source) (*Config, error) {
	parser := hclparse.NewParser()
	var allParsedBlocks []parsedBlocks

	for _, src := range sources {
		hclFile, diags := parser.ParseHCL(src.data, src.name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("parse %s: %w", src.name, diags)
		}

		// Extract all known block types in one PartialContent call
		content, _, diags := hclFile.Body.PartialContent(&hcl.BodySchema{
			Blocks: []hcl.BlockHeaderSchema{
				{Type: "variable", LabelNames: []string{"name"}},
				{Type: "model", LabelNames: []string{"name"}},
				{Type: "storage"},
				{Type: "server"},
			},
		})
		if diags.HasErrors() {
			return nil, fmt.Errorf("read %s: %w", src.name, diags)
		}

		var pb parsedBlocks
		for _, block := range content.Blocks {
			switch block.Type {
			case "variable":
				pb.Variables = append(pb.Variables, block)
			case "model":
				pb.Models = append(pb.Models, block)
			case "storage":
				pb.Storage = append(pb.Storage, block)
			case "server":
				pb.Server = append(pb.Server, block)
			}
		}
		allParsedBlocks = append(allParsedBlocks, pb)
	}

	// Stage 1: Load variables (no context needed)
	var allVars []Variable
	for _, pb := range allParsedBlocks {
		for _, block := range pb.Variables {
			var v Variable
			v.Name = block.Labels[0]
			diags := gohcl.DecodeBody(block.Body, nil, &v)
			if diags.HasErrors() {
				return nil, fmt.Errorf("decode variable %s: %w", v.Name, diags)
			}
			allVars = append(allVars, v)
		}
	}

	varsCtx, resolvedVars := buildVarsContext(allVars)

	// Stage 2: Load models (with vars context)
	var allModels []Model
	for _, pb := range allParsedBlocks {
		for _, block := range pb.Models {
			var m Model
			m.Name = block.Labels[0]
			diags := gohcl.DecodeBody(block.Body, varsCtx, &m)
			if diags.HasErrors() {
				return nil, diags
			}
			allModels = append(allModels, m)
		}
	}

	// Stage 3: storage and server blocks (with vars context)
	var storage *StorageConfig
	var server *ServerConfig
	for _, pb := range allParsedBlocks {
		for _, block := range pb.Storage {
			if storage != nil {
				return nil, fmt.Errorf("duplicate storage block")
			}
			var s StorageConfig
			diags := gohcl.DecodeBody(block.Body, varsCtx, &s)
			if diags.HasErrors() {
				return nil, diags
			}
			storage = &s
		}
		for _, block := range pb.Server {
			if server != nil {
				return nil, fmt.Errorf("duplicate server block")
			}
			var s ServerConfig
			diags := gohcl.DecodeBody(block.Body, varsCtx, &s)
			if diags.HasErrors() {
				return nil, diags
			}
			server = &s
		}
	}

	if storage == nil {
		storage = &StorageConfig{}
	}
	storage.Defaults()
	if server == nil {
		server = &ServerConfig{}
	}
	server.Defaults()

	return &Config{
		Variables:    allVars,
		Models:       allModels,
		Storage:      storage,
		Server:       server,
		ResolvedVars: resolvedVars,
	}, nil
}

// buildVarsContext creates context with just vars.
// Priority per variable: vars file > environment (upper-cased name) > default.
func buildVarsContext(vars []Variable) (*hcl.EvalContext, map[string]cty.Value) {
	varsMap := make(map[string]cty.Value)
	fileVars, _ := LoadVarsFromFile()
	for _, v := range vars {
		varsMap[v.Name] = cty.StringVal(resolveVar(v, fileVars))
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"vars": cty.ObjectVal(varsMap),
		},
	}, varsMap
}
