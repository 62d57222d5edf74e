package config

import (
	"fmt"
	"sort"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
)

// DefaultNetwork is used when no network is selected
const DefaultNetwork = "testnet"

var networks = map[string]aptos.NetworkConfig{
	"mainnet":  aptos.MainnetConfig,
	"testnet":  aptos.TestnetConfig,
	"devnet":   aptos.DevnetConfig,
	"localnet": aptos.LocalnetConfig,
}

// ResolveNetwork maps a network name to its node configuration.
// nodeURL, if set, replaces the preset fullnode endpoint.
func ResolveNetwork(name, nodeURL string) (aptos.NetworkConfig, error) {
	network, ok := networks[name]
	if !ok {
		return aptos.NetworkConfig{}, fmt.Errorf("%w: invalid network %q, expected one of %v", model.ErrConfiguration, name, NetworkNames())
	}
	if nodeURL != "" {
		network.NodeUrl = nodeURL
	}
	return network, nil
}

// NetworkNames returns the supported network names, sorted
func NetworkNames() []string {
	names := make([]string, 0, len(networks))
	for name := range networks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
