// Batch native coin transfers and faucet sweeps on Aptos.
// Usage: coin-transfer transfer -k <key> --amount 1.2 -f address.csv -n testnet
package main

import (
	"fmt"
	"os"

	"github.com/AlexZinkM/coin-transfer/coin"
	"github.com/AlexZinkM/coin-transfer/internal/config"
	"github.com/AlexZinkM/coin-transfer/internal/logger"
	"github.com/AlexZinkM/coin-transfer/internal/ui"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	version     = "1.0.0"
	description = "Transfer coins to a list of Aptos addresses"
)

const (
	FlagPrivateKey  = "private-key"
	FlagKeyFile     = "key-file"
	FlagNetwork     = "network"
	FlagVerbose     = "verbose"
	FlagAmount      = "amount"
	FlagAddressFile = "address-file"
	FlagQR          = "qr"
	FlagContract    = "contract"
	FlagCount       = "count"
	FlagCoins       = "coins"
	FlagFundAmount  = "fund-amount"
	FlagProfile     = "profile"
	FlagOut         = "out"
)

// globalFlags are shared by every subcommand
type globalFlags struct {
	privateKey string
	keyFile    string
	network    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:           "coin-transfer",
		Short:         description,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&flags.privateKey, FlagPrivateKey, "k", "", "Your wallet private key (hex)")
	rootCmd.PersistentFlags().StringVar(&flags.keyFile, FlagKeyFile, "", "Encrypted key file (.cwt), password is prompted")
	rootCmd.PersistentFlags().StringVarP(&flags.network, FlagNetwork, "n", config.DefaultNetwork, "Aptos network: mainnet, testnet, devnet or localnet")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, FlagVerbose, "v", false, "Log every submitted transaction")

	rootCmd.AddCommand(
		transferCmd(flags),
		faucetCmd(flags),
		balanceCmd(flags),
		keygenCmd(flags),
	)

	return rootCmd
}

// session is what every subcommand needs after env and flags are read
type session struct {
	env    *config.Env
	logger *zap.Logger
	out    *ui.Printer
}

func setup(flags *globalFlags) (*session, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	level := env.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(level)
	if err != nil {
		return nil, err
	}

	return &session{env: env, logger: log, out: ui.NewPrinter(os.Stdout)}, nil
}

func transferCmd(flags *globalFlags) *cobra.Command {
	opts := config.TransferOptions{}

	cmd := &cobra.Command{
		Use:   "transfer",
		Short: "Transfer the same amount of APT to every address in a file",
		Long: `Transfer the same amount of APT to every address of the address file, in file order.
Each transfer waits for confirmation before the next starts; the first failure stops the run.

Example:
  coin-transfer transfer -k 0x... --amount 1.2 -f address.csv -n testnet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.logger.Sync() //nolint:errcheck

			rt.out.Banner("Coin Transfer", version, description)

			// Fail on bad input before the key file password is prompted
			opts.Network = flags.network
			opts.NodeURL = rt.env.NodeURL
			if err := coin.CheckTransfer(opts); err != nil {
				return err
			}

			seed, err := config.ResolvePrivateKey(config.KeySource{
				PrivateKey: flags.privateKey,
				KeyFile:    flags.keyFile,
				EnvKey:     rt.env.PrivateKey,
			})
			if err != nil {
				return err
			}
			defer clear(seed) // Always clear private key from memory

			return coin.Transfer(opts, seed, coin.AptosDialer(rt.env.MaxGasAmount, rt.logger), rt.out)
		},
	}

	cmd.Flags().StringVar(&opts.Amount, FlagAmount, "", "Transfer amount in APT, e.g. 1.2")
	cmd.Flags().StringVarP(&opts.AddressFile, FlagAddressFile, "f", config.DefaultAddressFile, "File with one target address per line")
	cmd.Flags().BoolVar(&opts.ShowQR, FlagQR, false, "Print the sender address as a QR code")
	_ = cmd.MarkFlagRequired(FlagAmount)

	return cmd
}

func faucetCmd(flags *globalFlags) *cobra.Command {
	opts := config.FaucetOptions{}
	var profile string

	cmd := &cobra.Command{
		Use:   "faucet",
		Short: "Request faucet coins through temporary accounts and sweep them to the main account",
		Long: `Each round funds a fresh account with APT, requests every coin from the faucet
contract with it, then transfers the received coins back to the main account.
Without a key flag the key is read from the Aptos CLI profile (APTOS_PROFILE_PATH).

Example:
  coin-transfer faucet --contract 0x... --count 10 --coins USDT,BTC`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.logger.Sync() //nolint:errcheck

			rt.out.Banner("Faucet", version, description)

			opts.Network = flags.network
			opts.NodeURL = rt.env.NodeURL
			opts.MaxCount = rt.env.FaucetMaxCount
			if err := coin.CheckFaucet(opts); err != nil {
				return err
			}

			seed, err := config.ResolvePrivateKey(config.KeySource{
				PrivateKey:  flags.privateKey,
				KeyFile:     flags.keyFile,
				EnvKey:      rt.env.PrivateKey,
				ProfilePath: rt.env.ProfilePath,
				Profile:     profile,
			})
			if err != nil {
				return err
			}
			defer clear(seed) // Always clear private key from memory

			return coin.Faucet(opts, seed, coin.AptosDialer(rt.env.MaxGasAmount, rt.logger), rt.out)
		},
	}

	cmd.Flags().StringVar(&opts.Contract, FlagContract, "", "Faucet contract address")
	cmd.Flags().IntVarP(&opts.Count, FlagCount, "c", 1, "Number of faucet rounds")
	cmd.Flags().StringSliceVar(&opts.Coins, FlagCoins, []string{"USDT", "BTC"}, "Coin names under <contract>::coins")
	cmd.Flags().StringVar(&opts.FundAmount, FlagFundAmount, "0.01", "APT sent to each temporary account for gas")
	cmd.Flags().BoolVar(&opts.ShowQR, FlagQR, false, "Print the main address as a QR code")
	cmd.Flags().StringVar(&profile, FlagProfile, config.DefaultProfile, "Aptos CLI profile to read the key from")
	_ = cmd.MarkFlagRequired(FlagContract)

	return cmd
}

func balanceCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Print the APT balance of the signing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.logger.Sync() //nolint:errcheck

			if _, err := config.ResolveNetwork(flags.network, rt.env.NodeURL); err != nil {
				return err
			}

			seed, err := config.ResolvePrivateKey(config.KeySource{
				PrivateKey: flags.privateKey,
				KeyFile:    flags.keyFile,
				EnvKey:     rt.env.PrivateKey,
			})
			if err != nil {
				return err
			}
			defer clear(seed)

			return coin.Balance(flags.network, rt.env.NodeURL, seed, coin.AptosDialer(rt.env.MaxGasAmount, rt.logger), rt.out)
		},
	}
}

func keygenCmd(flags *globalFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a new account into an encrypted key file",
		Long: `Generate a new Ed25519 account and store it encrypted (scrypt + AES-GCM) in a .cwt file.

Example:
  coin-transfer keygen -o main.cwt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(flags)
			if err != nil {
				return err
			}
			defer rt.logger.Sync() //nolint:errcheck

			password, err := config.PromptForNewPassword()
			if err != nil {
				return err
			}
			defer clear(password) // Always clear password from memory

			address, err := coin.GenerateKeyFile(out, flags.network, password)
			if err != nil {
				return err
			}

			rt.logger.Info("key file written", zap.String("path", out))
			rt.out.Address(address, true)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, FlagOut, "o", "", "Key file path, must end with .cwt")
	_ = cmd.MarkFlagRequired(FlagOut)

	return cmd
}
