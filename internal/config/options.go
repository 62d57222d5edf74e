package config

import (
	"fmt"

	"github.com/AlexZinkM/coin-transfer/internal/model"
)

// DefaultAddressFile is read when no address file is given
const DefaultAddressFile = "address.csv"

// KeySource lists where the signing key may come from, in priority order.
type KeySource struct {
	PrivateKey  string // hex, from flag
	KeyFile     string // encrypted key file
	EnvKey      string // hex, from APTOS_PRIVATE_KEY
	ProfilePath string // Aptos CLI config, empty disables it
	Profile     string
}

// TransferOptions configures the batch transfer run.
type TransferOptions struct {
	Network     string
	NodeURL     string // overrides the network preset when set
	Amount      string
	AddressFile string
	ShowQR      bool
}

// Validate checks the options before any file or network access
func (o *TransferOptions) Validate() error {
	if o.Amount == "" {
		return fmt.Errorf("%w: amount is required", model.ErrConfiguration)
	}
	if o.AddressFile == "" {
		o.AddressFile = DefaultAddressFile
	}
	return nil
}

// FaucetOptions configures the faucet loop.
type FaucetOptions struct {
	Network    string
	NodeURL    string // overrides the network preset when set
	Contract   string
	Coins      []string // coin names under <contract>::coins
	Count      int
	MaxCount   int // upper bound on Count, from FAUCET_MAX_COUNT
	FundAmount string
	ShowQR     bool
}

// Validate checks the options before any network access
func (o *FaucetOptions) Validate() error {
	if o.Contract == "" {
		return fmt.Errorf("%w: faucet contract is required", model.ErrConfiguration)
	}
	if len(o.Coins) == 0 {
		return fmt.Errorf("%w: at least one faucet coin is required", model.ErrConfiguration)
	}
	if o.Count < 0 || o.Count > o.MaxCount {
		return fmt.Errorf("%w: invalid faucet count %d, must be within [0, %d]", model.ErrValidation, o.Count, o.MaxCount)
	}
	if o.FundAmount == "" {
		return fmt.Errorf("%w: fund amount is required", model.ErrConfiguration)
	}
	return nil
}
