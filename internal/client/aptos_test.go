package client

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
	"github.com/aptos-labs/aptos-go-sdk/bcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testTxnHash = "0xabc"

// fullnode answers the handful of REST routes the client touches
type fullnode struct {
	mu        sync.Mutex
	submitted [][]byte
	success   bool
	vmStatus  string
	resources []aptos.AccountResourceInfo
}

func newFullnode(t *testing.T, node *fullnode) *AptosClient {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /estimate_gas_price", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"deprioritized_gas_estimate": 100,
			"gas_estimate":               100,
			"prioritized_gas_estimate":   150,
		})
	})
	mux.HandleFunc("GET /accounts/{address}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{
			"sequence_number":    "0",
			"authentication_key": r.PathValue("address"),
		})
	})
	mux.HandleFunc("GET /accounts/{address}/resources", func(w http.ResponseWriter, r *http.Request) {
		node.mu.Lock()
		defer node.mu.Unlock()
		writeJSON(w, node.resources)
	})
	mux.HandleFunc("POST /transactions", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		node.mu.Lock()
		node.submitted = append(node.submitted, body)
		node.mu.Unlock()
		writeStatusJSON(w, http.StatusAccepted, map[string]any{"hash": testTxnHash, "sequence_number": "0"})
	})
	mux.HandleFunc("GET /transactions/by_hash/{hash}", func(w http.ResponseWriter, r *http.Request) {
		node.mu.Lock()
		defer node.mu.Unlock()
		writeJSON(w, map[string]any{
			"type":      "user_transaction",
			"hash":      r.PathValue("hash"),
			"version":   "1",
			"gas_used":  "7",
			"success":   node.success,
			"vm_status": node.vmStatus,
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := NewAptosClient(aptos.NetworkConfig{Name: "local", NodeUrl: srv.URL, ChainId: 4}, 1234, zap.NewNop())
	require.NoError(t, err)
	return c
}

func writeJSON(w http.ResponseWriter, v any) {
	writeStatusJSON(w, http.StatusOK, v)
}

func writeStatusJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func testSigner(t *testing.T) *aptos.Account {
	t.Helper()
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	account, err := AccountFromSeed(seed)
	require.NoError(t, err)
	return account
}

func testRecipient(t *testing.T) aptos.AccountAddress {
	t.Helper()
	var recipient aptos.AccountAddress
	require.NoError(t, recipient.ParseStringRelaxed("0xaa01"))
	return recipient
}

func TestExecuteAppliesMaxGasAmount(t *testing.T) {
	node := &fullnode{success: true, vmStatus: "Executed successfully"}
	c := newFullnode(t, node)
	signer := testSigner(t)

	hash, err := c.Execute(signer, model.TransferPayload(testRecipient(t), 5000))
	require.NoError(t, err)
	assert.Equal(t, testTxnHash, hash)

	node.mu.Lock()
	defer node.mu.Unlock()
	require.Len(t, node.submitted, 1)

	des := bcs.NewDeserializer(node.submitted[0])
	var raw aptos.RawTransaction
	raw.UnmarshalBCS(des)
	require.NoError(t, des.Error())

	assert.Equal(t, uint64(1234), raw.MaxGasAmount)
	assert.Equal(t, uint64(100), raw.GasUnitPrice)
	assert.Equal(t, uint8(4), raw.ChainId)
	assert.Equal(t, signer.Address, raw.Sender)
}

func TestExecuteReportsFailedTransaction(t *testing.T) {
	node := &fullnode{success: false, vmStatus: "Move abort in 0x1::coin: EINSUFFICIENT_BALANCE(0x10006)"}
	c := newFullnode(t, node)

	_, err := c.Execute(testSigner(t), model.TransferPayload(testRecipient(t), 5000))
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrTransaction))

	var failed *model.TransactionFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, testTxnHash, failed.Hash)
	assert.Contains(t, failed.VMStatus, "EINSUFFICIENT_BALANCE")
}

func TestCoinBalanceFound(t *testing.T) {
	node := &fullnode{resources: []aptos.AccountResourceInfo{
		{Type: "0x1::account::Account", Data: map[string]any{"sequence_number": "3"}},
		{
			Type: "0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>",
			Data: map[string]any{"coin": map[string]any{"value": "250000000"}},
		},
	}}
	c := newFullnode(t, node)

	balance, err := c.CoinBalance(testRecipient(t), model.AptosCoinType)
	require.NoError(t, err)
	assert.Equal(t, uint64(250000000), balance)
}

func TestCoinBalanceMissingStore(t *testing.T) {
	node := &fullnode{resources: []aptos.AccountResourceInfo{
		{Type: "0x1::account::Account", Data: map[string]any{"sequence_number": "3"}},
	}}
	c := newFullnode(t, node)

	_, err := c.CoinBalance(testRecipient(t), model.AptosCoinType)
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrNotFound))
}

func TestCoinBalanceLeadingZeroContract(t *testing.T) {
	var contract aptos.AccountAddress
	require.NoError(t, contract.ParseStringRelaxed("0x0abc000000000000000000000000000000000000000000000000000000000001"))

	// Nodes render struct tag addresses without leading zeros
	node := &fullnode{resources: []aptos.AccountResourceInfo{
		{
			Type: "0x1::coin::CoinStore<0xabc000000000000000000000000000000000000000000000000000000000001::coins::USDT>",
			Data: map[string]any{"coin": map[string]any{"value": "42"}},
		},
	}}
	c := newFullnode(t, node)

	balance, err := c.CoinBalance(testRecipient(t), model.ContractCoinType(contract, "USDT"))
	require.NoError(t, err)
	assert.Equal(t, uint64(42), balance)
}

func TestSameMoveType(t *testing.T) {
	assert.True(t, sameMoveType(
		"0x1::coin::CoinStore<0x0000000000000000000000000000000000000000000000000000000000000001::aptos_coin::AptosCoin>",
		"0x1::coin::CoinStore<0x1::aptos_coin::AptosCoin>",
	))
	assert.True(t, sameMoveType("0x00beef::coins::BTC", "0xbeef::coins::BTC"))
	assert.False(t, sameMoveType("0xbeef::coins::BTC", "0xbeef::coins::USDT"))
	assert.False(t, sameMoveType("0xbeef::coins::BTC", "0xbeee::coins::BTC"))
}
