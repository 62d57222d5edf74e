package coin

import (
	"fmt"

	"github.com/AlexZinkM/coin-transfer/internal/common"
	"github.com/AlexZinkM/coin-transfer/internal/config"
	"github.com/AlexZinkM/coin-transfer/internal/model"
	"github.com/AlexZinkM/coin-transfer/internal/ui"

	"github.com/aptos-labs/aptos-go-sdk"
)

type faucetPlan struct {
	network   aptos.NetworkConfig
	contract  aptos.AccountAddress
	fundUnits uint64
	coinTypes []string
}

func planFaucet(opts *config.FaucetOptions) (*faucetPlan, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	network, err := config.ResolveNetwork(opts.Network, opts.NodeURL)
	if err != nil {
		return nil, err
	}

	contract, err := common.ParseAddress(opts.Contract)
	if err != nil {
		return nil, fmt.Errorf("invalid faucet contract: %w", err)
	}

	fundAmount, err := common.ParseAmount(opts.FundAmount)
	if err != nil {
		return nil, err
	}
	fundUnits, err := common.ToBaseUnits(fundAmount, AptosCoin.Decimals)
	if err != nil {
		return nil, err
	}

	coinTypes := make([]string, 0, len(opts.Coins))
	for _, name := range opts.Coins {
		coinTypes = append(coinTypes, model.ContractCoinType(contract, name))
	}

	return &faucetPlan{network: network, contract: contract, fundUnits: fundUnits, coinTypes: coinTypes}, nil
}

// CheckFaucet runs the offline checks of Faucet
func CheckFaucet(opts config.FaucetOptions) error {
	_, err := planFaucet(&opts)
	return err
}

// Faucet runs opts.Count rounds. Each round funds a fresh account from the main
// account, requests every faucet coin from opts.Contract with it, and sweeps the
// received coins back to the main account.
func Faucet(opts config.FaucetOptions, seed []byte, dial Dialer, out *ui.Printer) error {
	plan, err := planFaucet(&opts)
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

	out.PrepareFaucet(opts.Count, opts.Coins, opts.Network)
	out.Address(mainAccount.Address.String(), opts.ShowQR)

	if err := ReportBalance(chain, mainAccount.Address, AptosCoin, out); err != nil {
		return err
	}

	for i := 0; i < opts.Count; i++ {
		out.Progress(i+1, opts.Count, "Faucet")

		if err := faucetRound(chain, mainAccount, plan.contract, plan.coinTypes, plan.fundUnits); err != nil {
			return fmt.Errorf("faucet %d/%d: %w", i+1, opts.Count, err)
		}
	}

	if err := ReportBalance(chain, mainAccount.Address, AptosCoin, out); err != nil {
		return err
	}

	out.Done("Finish.")
	return nil
}

func faucetRound(chain Chain, mainAccount *aptos.Account, contract aptos.AccountAddress, coinTypes []string, fundUnits uint64) error {
	account, err := chain.NewAccount()
	if err != nil {
		return err
	}

	// Transfer gas money to the new account
	if _, err := chain.Execute(mainAccount, model.TransferPayload(account.Address, fundUnits)); err != nil {
		return fmt.Errorf("failed to fund %s: %w", account.Address.String(), err)
	}

	// Faucet from the new account
	for _, coinType := range coinTypes {
		if _, err := chain.Execute(account, model.FaucetRequestPayload(contract, coinType)); err != nil {
			return fmt.Errorf("failed to request %s: %w", coinType, err)
		}
	}

	// Transfer coins back to the main account
	for _, coinType := range coinTypes {
		balance, err := chain.CoinBalance(account.Address, coinType)
		if err != nil {
			return err
		}

		if _, err := chain.Execute(account, model.TransferCoinsPayload(coinType, mainAccount.Address, balance)); err != nil {
			return fmt.Errorf("failed to return %s: %w", coinType, err)
		}
	}

	return nil
}
