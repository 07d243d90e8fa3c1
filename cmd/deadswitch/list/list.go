package list

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/stateread"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func List() *cli.Command {

	cfg := struct {
		nodeURL string
		owner   string
	}{}
	return &cli.Command{
		Name:  "list",
		Usage: "List the switches created by an owner",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "node-url",
				Usage:       "The URL of the node to connect to",
				Value:       "http://localhost:8545",
				EnvVars:     []string{"NODE_URL"},
				Destination: &cfg.nodeURL,
			},
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "the owner address to list switches for",
				Required:    true,
				Destination: &cfg.owner,
			},
		},
		Action: func(c *cli.Context) error {

			ctx, stop := signal.NotifyContext(c.Context, os.Interrupt)
			defer stop()

			if !common.IsHexAddress(cfg.owner) {
				return fmt.Errorf("invalid owner address: %q", cfg.owner)
			}

			client, err := ethclient.DialContext(ctx, cfg.nodeURL)
			if err != nil {
				return fmt.Errorf("failed to connect to node: %w", err)
			}
			defer client.Close()

			remote := stateread.New(ctx, client)

			page, err := switchtx.GetSwitchesByOwner(remote, common.HexToAddress(cfg.owner))
			if err != nil {
				return err
			}
			if err := remote.Err(); err != nil {
				return fmt.Errorf("failed to read owner index: %w", err)
			}

			fmt.Println("total:", page.Total)
			for _, id := range page.SwitchIDs {
				fmt.Println("switch", id)
			}
			if page.Total > uint64(len(page.SwitchIDs)) {
				fmt.Println("(truncated to the first", len(page.SwitchIDs), "ids)")
			}

			return nil
		},
	}
}
