package coin

import (
	"bytes"
	"testing"

	"github.com/AlexZinkM/coin-transfer/internal/client"
	"github.com/AlexZinkM/coin-transfer/internal/model"
	"github.com/AlexZinkM/coin-transfer/internal/ui"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportBalance(t *testing.T) {
	chain := newFakeChain()
	main, err := client.AccountFromSeed(testSeed())
	require.NoError(t, err)
	chain.setBalance(main.Address, model.AptosCoinType, 123456789)

	var out bytes.Buffer
	require.NoError(t, ReportBalance(chain, main.Address, AptosCoin, ui.NewPrinter(&out)))
	assert.Contains(t, out.String(), "1.2345 APT")
}

func TestReportBalanceNotFound(t *testing.T) {
	main, err := client.AccountFromSeed(testSeed())
	require.NoError(t, err)

	err = ReportBalance(newFakeChain(), main.Address, AptosCoin, ui.NewPrinter(&bytes.Buffer{}))
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestBalance(t *testing.T) {
	chain := newFakeChain()
	main, err := client.AccountFromSeed(testSeed())
	require.NoError(t, err)
	chain.setBalance(main.Address, model.AptosCoinType, 250000000)

	var out bytes.Buffer
	dials := 0
	require.NoError(t, Balance("devnet", "", testSeed(), chain.dialer(&dials), ui.NewPrinter(&out)))
	assert.Contains(t, out.String(), main.Address.String())
	assert.Contains(t, out.String(), "2.5 APT")

	err = Balance("nowhere", "", testSeed(), forbiddenDialer(t), ui.NewPrinter(&bytes.Buffer{}))
	assert.ErrorIs(t, err, model.ErrConfiguration)
}
