package model

import "github.com/aptos-labs/aptos-go-sdk"

// Well-known entry functions.
const (
	FunctionTransfer      = "0x1::aptos_account::transfer"
	FunctionTransferCoins = "0x1::aptos_account::transfer_coins"
)

// EntryFunctionPayload is one request to execute an entry function on-chain.
// Arguments may only hold aptos.AccountAddress or uint64 values.
type EntryFunctionPayload struct {
	Function      string
	TypeArguments []string
	Arguments     []any
}

// TransferPayload builds a native coin transfer of amount base units to recipient.
func TransferPayload(recipient aptos.AccountAddress, amount uint64) EntryFunctionPayload {
	return EntryFunctionPayload{
		Function:      FunctionTransfer,
		TypeArguments: []string{},
		Arguments:     []any{recipient, amount},
	}
}

// TransferCoinsPayload builds a transfer of amount base units of coinType to recipient.
func TransferCoinsPayload(coinType string, recipient aptos.AccountAddress, amount uint64) EntryFunctionPayload {
	return EntryFunctionPayload{
		Function:      FunctionTransferCoins,
		TypeArguments: []string{coinType},
		Arguments:     []any{recipient, amount},
	}
}

// FaucetRequestPayload builds <contract>::faucet::request<coinType>(contract).
func FaucetRequestPayload(contract aptos.AccountAddress, coinType string) EntryFunctionPayload {
	return EntryFunctionPayload{
		Function:      contract.String() + "::faucet::request",
		TypeArguments: []string{coinType},
		Arguments:     []any{contract},
	}
}
