package coin

import (
	"fmt"

	"github.com/AlexZinkM/coin-transfer/internal/client"
	"github.com/AlexZinkM/coin-transfer/internal/common"
	"github.com/AlexZinkM/coin-transfer/internal/config"
	"github.com/AlexZinkM/coin-transfer/internal/model"
	"github.com/AlexZinkM/coin-transfer/internal/ui"

	"github.com/aptos-labs/aptos-go-sdk"
)

// transferPlan is everything Transfer needs that can be checked offline
type transferPlan struct {
	network   aptos.NetworkConfig
	amount    string
	units     uint64
	addresses []aptos.AccountAddress
}

func planTransfer(opts *config.TransferOptions) (*transferPlan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	network, err := config.ResolveNetwork(opts.Network, opts.NodeURL)
	if err != nil {
		return nil, err
	}

	amount, err := common.ParseAmount(opts.Amount)
	if err != nil {
		return nil, err
	}
	units, err := common.ToBaseUnits(amount, AptosCoin.Decimals)
	if err != nil {
		return nil, err
	}

	addresses, err := common.ReadAddressFile(opts.AddressFile)
	if err != nil {
		return nil, err
	}

	return &transferPlan{network: network, amount: amount.String(), units: units, addresses: addresses}, nil
}

// CheckTransfer runs every offline check of Transfer: options, network, amount
// and the address file. Callers use it before asking for the signing key.
func CheckTransfer(opts config.TransferOptions) error {
	_, err := planTransfer(&opts)
	return err
}

// Transfer sends opts.Amount of the native coin to every address of opts.AddressFile,
// one confirmed transaction at a time and in file order. The first failure aborts the run.
func Transfer(opts config.TransferOptions, seed []byte, dial Dialer, out *ui.Printer) error {
	// Amount and addresses are checked before anything touches the network
	plan, err := planTransfer(&opts)
	if err != nil {
		return err
	}

	mainAccount, err := accountFromSeed(seed)
	if err != nil {
		return err
	}

	chain, err := dial(plan.network)
	if err != nil {
		return err
	}

	out.PrepareTransfer(plan.amount, AptosCoin.Symbol, len(plan.addresses), opts.Network)
	out.Address(mainAccount.Address.String(), opts.ShowQR)

	if err := ReportBalance(chain, mainAccount.Address, AptosCoin, out); err != nil {
		return err
	}

	if err := transferAll(chain, mainAccount, plan.addresses, plan.units, out); err != nil {
		return err
	}

	if err := ReportBalance(chain, mainAccount.Address, AptosCoin, out); err != nil {
		return err
	}

	out.Done("Transfer finished.")
	return nil
}

func transferAll(chain Chain, sender *aptos.Account, addresses []aptos.AccountAddress, units uint64, out *ui.Printer) error {
	for i, address := range addresses {
		out.Progress(i+1, len(addresses), "Transfer to "+address.String())

		if _, err := chain.Execute(sender, model.TransferPayload(address, units)); err != nil {
			return fmt.Errorf("transfer %d/%d to %s: %w", i+1, len(addresses), address.String(), err)
		}
	}
	return nil
}

// accountFromSeed derives the signing account. The caller keeps ownership of seed.
func accountFromSeed(seed []byte) (*aptos.Account, error) {
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: no private key", model.ErrConfiguration)
	}
	return client.AccountFromSeed(seed)
}
