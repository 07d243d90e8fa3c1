package account

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/useraccount"
)

func Account() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "Manage the local wallet",
		Subcommands: []*cli.Command{
			create(),
			address(),
		},
	}
}

func create() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new wallet",
		Action: func(c *cli.Context) error {
			// Resolving the config file also creates missing parent
			// directories.
			walletPath, err := xdg.ConfigFile(useraccount.WalletPath)
			if err != nil {
				return fmt.Errorf("failed to resolve wallet path: %w", err)
			}

			if info, err := os.Stat(walletPath); err == nil && info.Size() != 0 {
				return fmt.Errorf("a wallet already exists at %s", walletPath)
			} else if os.IsPermission(err) {
				return fmt.Errorf("failed to stat %s: %w", walletPath, err)
			}

			password, err := useraccount.ReadPassword(true)
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}

			ks := keystore.NewKeyStore(filepath.Dir(walletPath), keystore.StandardScryptN, keystore.StandardScryptP)
			account, err := ks.NewAccount(password)
			if err != nil {
				return fmt.Errorf("failed to create new account: %w", err)
			}

			// The keystore names the file after the key; move it to the
			// fixed wallet path the other commands load from.
			if created := account.URL.Path; created != walletPath {
				if err := os.Rename(created, walletPath); err != nil {
					return fmt.Errorf("failed to move wallet file: %w", err)
				}
			}

			fmt.Println("New wallet created", walletPath)
			fmt.Println("Address:", account.Address.Hex())

			return nil
		},
	}
}

func address() *cli.Command {
	return &cli.Command{
		Name:  "address",
		Usage: "Print the wallet address",
		Action: func(c *cli.Context) error {
			account, err := useraccount.Load()
			if err != nil {
				return fmt.Errorf("failed to load account: %w", err)
			}
			fmt.Println(account.Address.Hex())
			return nil
		},
	}
}
