package checkin

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

func Checkin() *cli.Command {

	cfg := struct {
		nodeURL string
	}{}
	return &cli.Command{
		Name:      "checkin",
		Usage:     "Reset the heartbeat deadline of a switch",
		ArgsUsage: "<switch-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "node-url",
				Usage:       "The URL of the node to connect to",
				Value:       "http://localhost:8545",
				EnvVars:     []string{"NODE_URL"},
				Destination: &cfg.nodeURL,
			},
		},
		Action: func(c *cli.Context) error {

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
			defer cancel()

			id, err := uint256.FromDecimal(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid switch id %q: %w", c.Args().First(), err)
			}

			userAccount, err := useraccount.Load()
			if err != nil {
				return fmt.Errorf("failed to load user account: %w", err)
			}

			receipt, err := txsubmit.Submit(ctx, cfg.nodeURL, userAccount, "checkin", &switchtx.SwitchIDArgs{SwitchID: id})
			if err != nil {
				return err
			}

			fmt.Println("Checked in", "switch", id, "block", receipt.BlockNumber)

			return nil
		},
	}
}
