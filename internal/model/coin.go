package model

import (
	"fmt"

	"github.com/aptos-labs/aptos-go-sdk"
)

const (
	AptosCoinType = "0x1::aptos_coin::AptosCoin" // native coin type tag
	AptosDecimals = 8                            // 1 APT = 10^8 octas
	AptosSymbol   = "APT"
)

// CoinStoreType returns the resource type holding an account's balance of coinType.
func CoinStoreType(coinType string) string {
	return fmt.Sprintf("0x1::coin::CoinStore<%s>", coinType)
}

// ContractCoinType returns the type tag of coin name published under contract's coins module.
func ContractCoinType(contract aptos.AccountAddress, name string) string {
	return fmt.Sprintf("%s::coins::%s", contract.String(), name)
}
