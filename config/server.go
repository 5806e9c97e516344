package config

// ServerConfig defines the dashboard server settings
type ServerConfig struct {
	Addr        string `hcl:"addr,optional"`
	DatasetPath string `hcl:"dataset_path,optional"`
}

// Defaults fills in default values for unset fields
func (s *ServerConfig) Defaults() {
	if s.Addr == "" {
		s.Addr = ":8000"
	}
	if s.DatasetPath == "" {
		s.DatasetPath = "sample_air_quality.csv"
	}
}
