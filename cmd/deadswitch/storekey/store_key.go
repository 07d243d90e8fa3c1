package storekey

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/txsubmit"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/useraccount"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func StoreKey() *cli.Command {

	cfg := struct {
		nodeURL string
		file    string
	}{}
	return &cli.Command{
		Name:      "store-key",
		Usage:     "Store the encrypted decryption key on a switch",
		ArgsUsage: "<switch-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "node-url",
				Usage:       "The URL of the node to connect to",
				Value:       "http://localhost:8545",
				EnvVars:     []string{"NODE_URL"},
				Destination: &cfg.nodeURL,
			},
			&cli.StringFlag{
				Name:        "file",
				Usage:       "path of the encrypted key blob",
				Required:    true,
				Destination: &cfg.file,
			},
		},
		Action: func(c *cli.Context) error {

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
			defer cancel()

			id, err := uint256.FromDecimal(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid switch id %q: %w", c.Args().First(), err)
			}

			key, err := os.ReadFile(cfg.file)
			if err != nil {
				return fmt.Errorf("failed to read key file: %w", err)
			}

			userAccount, err := useraccount.Load()
			if err != nil {
				return fmt.Errorf("failed to load user account: %w", err)
			}

			_, err = txsubmit.Submit(ctx, cfg.nodeURL, userAccount, "storeDecryptionKey", &switchtx.StoreKeyArgs{
				SwitchID: id,
				Key:      key,
			})
			if err != nil {
				return err
			}

			fmt.Println("Key stored", "switch", id, "bytes", len(key))

			return nil
		},
	}
}
