package config

import (
	"fmt"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/kelseyhightower/envconfig"
)

// Env contains configuration parameters read from environment variables.
type Env struct {
	PrivateKey     string `envconfig:"APTOS_PRIVATE_KEY"`
	NodeURL        string `envconfig:"APTOS_NODE_URL"`
	MaxGasAmount   uint64 `envconfig:"APTOS_MAX_GAS_AMOUNT" default:"2000"`
	FaucetMaxCount int    `envconfig:"FAUCET_MAX_COUNT" default:"1000"`
	ProfilePath    string `envconfig:"APTOS_PROFILE_PATH" default:".aptos/config.yaml"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
}

// LoadEnv loads configuration from environment variables.
func LoadEnv() (*Env, error) {
	env := &Env{}
	if err := envconfig.Process("", env); err != nil {
		return nil, fmt.Errorf("%w: failed to process env: %w", model.ErrConfiguration, err)
	}
	if env.MaxGasAmount == 0 {
		return nil, fmt.Errorf("%w: APTOS_MAX_GAS_AMOUNT must be positive", model.ErrConfiguration)
	}
	if env.FaucetMaxCount < 0 {
		return nil, fmt.Errorf("%w: FAUCET_MAX_COUNT must not be negative", model.ErrConfiguration)
	}
	return env, nil
}
