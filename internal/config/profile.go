package config

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"gopkg.in/yaml.v3"
)

// DefaultProfile is the Aptos CLI profile read when none is named
const DefaultProfile = "default"

// cliConfig is the subset of the Aptos CLI config.yaml we read
type cliConfig struct {
	Profiles map[string]struct {
		PrivateKey string `yaml:"private_key"`
		Account    string `yaml:"account"`
		RestURL    string `yaml:"rest_url"`
	} `yaml:"profiles"`
}

// ReadProfileKey returns the private key of profile from an Aptos CLI config file
func ReadProfileKey(path, profile string) (string, error) {
	if profile == "" {
		profile = DefaultProfile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: can't read account private key from %s: %w", model.ErrConfiguration, path, err)
	}

	var cfg cliConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return "", fmt.Errorf("%w: failed to parse %s: %w", model.ErrConfiguration, path, err)
	}

	p, ok := cfg.Profiles[profile]
	if !ok || p.PrivateKey == "" {
		return "", fmt.Errorf("%w: no private key in profile %q of %s", model.ErrConfiguration, profile, path)
	}
	return p.PrivateKey, nil
}
