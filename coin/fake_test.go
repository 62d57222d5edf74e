package coin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/coin-transfer/internal/model"

	"github.com/aptos-labs/aptos-go-sdk"
)

type executed struct {
	sender  aptos.AccountAddress
	payload model.EntryFunctionPayload
}

// fakeChain records executions and serves balances from memory
type fakeChain struct {
	balances    map[string]uint64
	executed    []executed
	failAt      int // 1-based execution that fails, 0 never
	faucetGrant uint64
	accounts    []*aptos.Account
}

func newFakeChain() *fakeChain {
	return &fakeChain{balances: map[string]uint64{}, faucetGrant: 1000}
}

func balanceKey(owner aptos.AccountAddress, coinType string) string {
	return owner.String() + "|" + coinType
}

func (f *fakeChain) setBalance(owner aptos.AccountAddress, coinType string, units uint64) {
	f.balances[balanceKey(owner, coinType)] = units
}

func (f *fakeChain) CoinBalance(owner aptos.AccountAddress, coinType string) (uint64, error) {
	units, ok := f.balances[balanceKey(owner, coinType)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", model.ErrNotFound, model.CoinStoreType(coinType))
	}
	return units, nil
}

func (f *fakeChain) Execute(signer *aptos.Account, payload model.EntryFunctionPayload) (string, error) {
	f.executed = append(f.executed, executed{sender: signer.Address, payload: payload})
	if f.failAt == len(f.executed) {
		return "", &model.TransactionFailedError{Hash: "0xdead", VMStatus: "EINSUFFICIENT_BALANCE"}
	}

	if strings.HasSuffix(payload.Function, "::faucet::request") {
		f.setBalance(signer.Address, payload.TypeArguments[0], f.faucetGrant)
	}
	return fmt.Sprintf("0x%02x", len(f.executed)), nil
}

func (f *fakeChain) NewAccount() (*aptos.Account, error) {
	account, err := aptos.NewEd25519Account()
	if err != nil {
		return nil, err
	}
	f.accounts = append(f.accounts, account)
	return account, nil
}

// dialer returns a Dialer handing out f and counting how often it was used
func (f *fakeChain) dialer(calls *int) Dialer {
	return func(aptos.NetworkConfig) (Chain, error) {
		*calls++
		return f, nil
	}
}

var errDial = errors.New("dial must not be called")

func forbiddenDialer(t interface{ Fatal(...any) }) Dialer {
	return func(aptos.NetworkConfig) (Chain, error) {
		t.Fatal(errDial)
		return nil, errDial
	}
}

func testSeed() []byte {
	seed := make([]byte, 32)
	for i := range seed {
		seed[i] = byte(i + 1)
	}
	return seed
}
