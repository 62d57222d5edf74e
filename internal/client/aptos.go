package client

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/crypto"
	"go.uber.org/zap"
)

// AptosClient is a client for working with an Aptos fullnode
type AptosClient struct {
	rpcClient    *aptos.Client
	nodeURL      string
	maxGasAmount uint64
	logger       *zap.Logger
}

// NewAptosClient creates a new client for the given network.
// maxGasAmount is the gas budget set on every transaction.
func NewAptosClient(network aptos.NetworkConfig, maxGasAmount uint64, logger *zap.Logger) (*AptosClient, error) {
	rpcClient, err := aptos.NewClient(network)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Aptos client: %w", model.ErrNetwork, err)
	}

	return &AptosClient{
		rpcClient:    rpcClient,
		nodeURL:      network.NodeUrl,
		maxGasAmount: maxGasAmount,
		logger:       logger.With(zap.String("node", network.NodeUrl)),
	}, nil
}

// AccountFromSeed derives an account from a 32-byte Ed25519 seed
func AccountFromSeed(seed []byte) (*aptos.Account, error) {
	key := &crypto.Ed25519PrivateKey{}
	if err := key.FromBytes(seed); err != nil {
		return nil, fmt.Errorf("%w: invalid private key: %w", model.ErrConfiguration, err)
	}

	account, err := aptos.NewAccountFromSigner(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to derive account: %w", model.ErrConfiguration, err)
	}
	return account, nil
}

// NewAccount generates a fresh Ed25519 account
func (c *AptosClient) NewAccount() (*aptos.Account, error) {
	account, err := aptos.NewEd25519Account()
	if err != nil {
		return nil, fmt.Errorf("failed to generate account: %w", err)
	}
	return account, nil
}

// CoinBalance returns the base unit balance of coinType held in owner's coin store.
// Fails with model.ErrNotFound if the account has no such coin store.
func (c *AptosClient) CoinBalance(owner aptos.AccountAddress, coinType string) (uint64, error) {
	resources, err := c.rpcClient.AccountResources(owner)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to get account resources of %s: %w", model.ErrNetwork, owner.String(), err)
	}

	storeType := model.CoinStoreType(coinType)
	for _, resource := range resources {
		if !sameMoveType(resource.Type, storeType) {
			continue
		}
		return coinStoreValue(resource.Data)
	}

	return 0, fmt.Errorf("%w: %s has no %s", model.ErrNotFound, owner.String(), storeType)
}

var typeAddress = regexp.MustCompile(`0x[0-9a-fA-F]+`)

// sameMoveType compares two Move type strings with every address in them
// put in canonical form, since nodes may strip leading zeros.
func sameMoveType(a, b string) bool {
	return canonicalMoveType(a) == canonicalMoveType(b)
}

func canonicalMoveType(s string) string {
	return typeAddress.ReplaceAllStringFunc(s, func(hex string) string {
		var address aptos.AccountAddress
		if err := address.ParseStringRelaxed(hex); err != nil {
			return hex
		}
		return address.String()
	})
}

// coinStoreValue extracts data.coin.value from a CoinStore resource
func coinStoreValue(data map[string]any) (uint64, error) {
	coin, ok := data["coin"].(map[string]any)
	if !ok {
		return 0, fmt.Errorf("%w: coin store has no coin field", model.ErrNotFound)
	}

	value, ok := coin["value"].(string)
	if !ok {
		return 0, fmt.Errorf("%w: coin store has no coin value", model.ErrNotFound)
	}

	amount, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse coin value %q: %w", value, err)
	}
	return amount, nil
}

// Execute builds payload into a transaction from signer, signs and submits it, and
// blocks until the network reports the result. Returns the transaction hash.
func (c *AptosClient) Execute(signer *aptos.Account, payload model.EntryFunctionPayload) (string, error) {
	entryFunction, err := EntryFunction(payload)
	if err != nil {
		return "", err
	}

	// Draft transaction with a fixed gas budget
	rawTxn, err := c.rpcClient.BuildTransaction(
		signer.Address,
		aptos.TransactionPayload{Payload: entryFunction},
		aptos.MaxGasAmount(c.maxGasAmount),
	)
	if err != nil {
		return "", fmt.Errorf("%w: failed to build transaction: %w", model.ErrNetwork, err)
	}

	// Sign transaction
	signedTxn, err := rawTxn.SignedTransaction(signer)
	if err != nil {
		return "", fmt.Errorf("%w: failed to sign transaction: %w", model.ErrTransaction, err)
	}

	// Send transaction
	submitted, err := c.rpcClient.SubmitTransaction(signedTxn)
	if err != nil {
		return "", fmt.Errorf("%w: failed to submit transaction: %w", model.ErrNetwork, err)
	}

	c.logger.Debug("transaction submitted",
		zap.String("hash", submitted.Hash),
		zap.String("sender", signer.Address.String()),
		zap.String("function", payload.Function),
		zap.Uint64("max_gas_amount", c.maxGasAmount),
	)

	// Wait for confirmation
	txn, err := c.rpcClient.WaitForTransaction(submitted.Hash)
	if err != nil {
		return "", fmt.Errorf("%w: failed to wait for transaction %s: %w", model.ErrNetwork, submitted.Hash, err)
	}
	if !txn.Success {
		return "", &model.TransactionFailedError{Hash: submitted.Hash, VMStatus: txn.VmStatus}
	}

	c.logger.Debug("transaction confirmed", zap.String("hash", submitted.Hash))

	return submitted.Hash, nil
}
