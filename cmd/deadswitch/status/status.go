package status

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/stateread"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func Status() *cli.Command {

	cfg := struct {
		nodeURL string
	}{}
	return &cli.Command{
		Name:      "status",
		Usage:     "Show the full state of a switch",
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

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			id, err := uint256.FromDecimal(c.Args().First())
			if err != nil {
				return fmt.Errorf("invalid switch id %q: %w", c.Args().First(), err)
			}

			client, err := ethclient.DialContext(ctx, cfg.nodeURL)
			if err != nil {
				return fmt.Errorf("failed to connect to node: %w", err)
			}
			defer client.Close()

			currentBlock, err := client.BlockNumber(ctx)
			if err != nil {
				return fmt.Errorf("failed to get current block: %w", err)
			}

			remote := stateread.New(ctx, client)

			view, err := switchtx.GetSwitch(remote, id)
			if err != nil {
				return err
			}
			expired, err := switchtx.IsExpired(remote, switchtx.Context{BlockNumber: currentBlock}, id)
			if err != nil {
				return err
			}
			if err := remote.Err(); err != nil {
				return fmt.Errorf("failed to read switch state: %w", err)
			}

			fmt.Println("switch:       ", id)
			fmt.Println("owner:        ", view.Owner.Hex())
			fmt.Println("beneficiary:  ", view.Beneficiary.Hex())
			fmt.Println("status:       ", records.Status(view.Status))
			fmt.Println("interval:     ", view.Interval)
			fmt.Println("grace period: ", view.GracePeriod)
			fmt.Println("last checkin: ", view.LastCheckin)
			fmt.Println("trigger block:", view.TriggerBlock)
			fmt.Println("chunks:       ", view.ChunkCount)
			fmt.Println("expired:      ", expired, "(at block", currentBlock, ")")

			return nil
		},
	}
}
