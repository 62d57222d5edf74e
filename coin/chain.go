package coin

import (
	"github.com/AlexZinkM/coin-transfer/internal/client"
	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
	"go.uber.org/zap"
)

// Chain is the network access the transfer and faucet loops need.
// *client.AptosClient implements it.
type Chain interface {
	// CoinBalance returns owner's balance of coinType in base units
	CoinBalance(owner aptos.AccountAddress, coinType string) (uint64, error)
	// Execute submits payload signed by signer and waits for it to succeed
	Execute(signer *aptos.Account, payload model.EntryFunctionPayload) (string, error)
	// NewAccount generates a fresh account
	NewAccount() (*aptos.Account, error)
}

// Dialer connects to a network. It is only called after all local validation passed.
type Dialer func(network aptos.NetworkConfig) (Chain, error)

// AptosDialer returns a Dialer building *client.AptosClient values with a fixed gas budget
func AptosDialer(maxGasAmount uint64, logger *zap.Logger) Dialer {
	return func(network aptos.NetworkConfig) (Chain, error) {
		return client.NewAptosClient(network, maxGasAmount, logger)
	}
}

// CoinInfo describes how to read and display one coin type
type CoinInfo struct {
	Type     string
	Decimals int32
	Symbol   string
}

// AptosCoin is the native coin
var AptosCoin = CoinInfo{
	Type:     model.AptosCoinType,
	Decimals: model.AptosDecimals,
	Symbol:   model.AptosSymbol,
}
