package coin

import (
	"fmt"

	"github.com/AlexZinkM/coin-transfer/internal/common"
	"github.com/AlexZinkM/coin-transfer/internal/config"
	"github.com/AlexZinkM/coin-transfer/internal/ui"

	"github.com/aptos-labs/aptos-go-sdk"
)

// ReportBalance prints owner's balance of coin, truncated to 4 decimals
func ReportBalance(chain Chain, owner aptos.AccountAddress, coin CoinInfo, out *ui.Printer) error {
	units, err := chain.CoinBalance(owner, coin.Type)
	if err != nil {
		return fmt.Errorf("failed to get balance: %w", err)
	}

	out.Balance(common.FormatCoinAmount(units, coin.Decimals), coin.Symbol)
	return nil
}

// Balance prints the native coin balance of the account derived from seed
func Balance(network, nodeURL string, seed []byte, dial Dialer, out *ui.Printer) error {
	networkConfig, err := config.ResolveNetwork(network, nodeURL)
	if err != nil {
		return err
	}

	account, err := accountFromSeed(seed)
	if err != nil {
		return err
	}

	chain, err := dial(networkConfig)
	if err != nil {
		return err
	}

	out.Address(account.Address.String(), false)
	return ReportBalance(chain, account.Address, AptosCoin, out)
}
