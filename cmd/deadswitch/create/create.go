package create

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/common"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/txsubmit"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/useraccount"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func Create() *cli.Command {

	cfg := struct {
		nodeURL     string
		beneficiary string
		interval    uint64
		grace       uint64
	}{}
	return &cli.Command{
		Name:  "create",
		Usage: "Create a new dead man's switch",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "node-url",
				Usage:       "The URL of the node to connect to",
				Value:       "http://localhost:8545",
				EnvVars:     []string{"NODE_URL"},
				Destination: &cfg.nodeURL,
			},
			&cli.StringFlag{
				Name:        "beneficiary",
				Usage:       "address that may read the key once the switch fires",
				Required:    true,
				Destination: &cfg.beneficiary,
			},
			&cli.Uint64Flag{
				Name:        "interval",
				Usage:       "blocks allowed between checkins",
				Value:       100,
				Destination: &cfg.interval,
			},
			&cli.Uint64Flag{
				Name:        "grace",
				Usage:       "blocks the owner has to cancel after a trigger",
				Value:       50,
				Destination: &cfg.grace,
			},
		},
		Action: func(c *cli.Context) error {

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
			defer cancel()

			if !common.IsHexAddress(cfg.beneficiary) {
				return fmt.Errorf("invalid beneficiary address: %q", cfg.beneficiary)
			}

			userAccount, err := useraccount.Load()
			if err != nil {
				return fmt.Errorf("failed to load user account: %w", err)
			}

			receipt, err := txsubmit.Submit(ctx, cfg.nodeURL, userAccount, "createSwitch", &switchtx.CreateSwitchArgs{
				Beneficiary: common.HexToAddress(cfg.beneficiary),
				Interval:    cfg.interval,
				GracePeriod: cfg.grace,
			})
			if err != nil {
				return err
			}

			for _, log := range receipt.Logs {
				if log.Topics[0] == switchtx.SwitchCreatedSig {
					fmt.Println("Switch created", "id", log.Topics[1].Big())
				}
			}

			return nil
		},
	}
}
