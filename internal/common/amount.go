package common

import (
	"fmt"
	"math/big"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/shopspring/decimal"
)

// DisplayDecimals is the number of fractional digits shown for balances
const DisplayDecimals = 4

// ParseAmount parses a human readable coin amount and checks it is strictly positive
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid amount %q", model.ErrValidation, s)
	}
	if !amount.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: amount must be greater than 0, got %s", model.ErrValidation, s)
	}
	return amount, nil
}

// ToBaseUnits converts a human amount into base units using 10^decimals.
// Digits beyond decimals are truncated. The result must fit in uint64 and be positive.
// Example: ToBaseUnits(1.5, 8) = 150000000
func ToBaseUnits(amount decimal.Decimal, decimals int32) (uint64, error) {
	units := amount.Truncate(decimals).Shift(decimals)
	if !units.IsPositive() {
		return 0, fmt.Errorf("%w: amount %s is below the smallest unit (%d decimals)", model.ErrValidation, amount, decimals)
	}

	// BigInt is exact here since units has no fractional part
	n := units.BigInt()
	if !n.IsUint64() {
		return 0, fmt.Errorf("%w: amount %s overflows base units", model.ErrValidation, amount)
	}
	return n.Uint64(), nil
}

// FromBaseUnits converts base units back to a human amount without precision loss
func FromBaseUnits(units uint64, decimals int32) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(units), -decimals)
}

// FormatCoinAmount renders base units as a decimal string truncated to DisplayDecimals
// fractional digits, trailing zeros removed.
// Example: FormatCoinAmount(123456789, 8) = "1.2345"
func FormatCoinAmount(units uint64, decimals int32) string {
	return FromBaseUnits(units, decimals).Truncate(DisplayDecimals).String()
}
