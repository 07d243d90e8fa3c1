package update

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/txsubmit"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/useraccount"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func Update() *cli.Command {
	return &cli.Command{
		Name:  "update",
		Usage: "Update switch settings",
		Subcommands: []*cli.Command{
			beneficiary(),
			interval(),
		},
	}
}

func beneficiary() *cli.Command {

	cfg := struct {
		nodeURL     string
		beneficiary string
	}{}
	return &cli.Command{
		Name:      "beneficiary",
		Usage:     "Change who receives the payload when the switch fires",
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
				Name:        "to",
				Usage:       "the new beneficiary address",
				Required:    true,
				Destination: &cfg.beneficiary,
			},
		},
		Action: func(c *cli.Context) error {

			ctx, cancel := signal.NotifyContext(c.Context, os.Interrupt)
			defer cancel()

			id, err := uint256.FromDecimal(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid switch id %q: %w", c.Args().First(), err)
			}

			if !common.IsHexAddress(cfg.beneficiary) {
				return fmt.Errorf("invalid beneficiary address: %q", cfg.beneficiary)
			}

			userAccount, err := useraccount.Load()
			if err != nil {
				return fmt.Errorf("failed to load user account: %w", err)
			}

			_, err = txsubmit.Submit(ctx, cfg.nodeURL, userAccount, "updateBeneficiary", &switchtx.UpdateBeneficiaryArgs{
				SwitchID:       id,
				NewBeneficiary: common.HexToAddress(cfg.beneficiary),
			})
			if err != nil {
				return err
			}

			fmt.Println("Beneficiary updated", "switch", id, "to", cfg.beneficiary)

			return nil
		},
	}
}

func interval() *cli.Command {

	cfg := struct {
		nodeURL  string
		interval uint64
	}{}
	return &cli.Command{
		Name:      "interval",
		Usage:     "Change the heartbeat interval",
		ArgsUsage: "<switch-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "node-url",
				Usage:       "The URL of the node to connect to",
				Value:       "http://localhost:8545",
				EnvVars:     []string{"NODE_URL"},
				Destination: &cfg.nodeURL,
			},
			&cli.Uint64Flag{
				Name:        "blocks",
				Usage:       "the new interval in blocks",
				Required:    true,
				Destination: &cfg.interval,
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

			_, err = txsubmit.Submit(ctx, cfg.nodeURL, userAccount, "updateInterval", &switchtx.UpdateIntervalArgs{
				SwitchID:    id,
				NewInterval: cfg.interval,
			})
			if err != nil {
				return err
			}

			fmt.Println("Interval updated", "switch", id, "blocks", cfg.interval)

			return nil
		},
	}
}
