package storedata

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/payload"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/txsubmit"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/useraccount"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func StoreData() *cli.Command {

	cfg := struct {
		nodeURL string
		file    string
	}{}
	return &cli.Command{
		Name:      "store-data",
		Usage:     "Compress a file and store it as sequential chunks on a switch",
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
				Usage:       "path of the (already encrypted) payload to store",
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

			data, err := os.ReadFile(cfg.file)
			if err != nil {
				return fmt.Errorf("failed to read payload file: %w", err)
			}

			chunks, err := payload.Split(data)
			if err != nil {
				return fmt.Errorf("failed to pack payload: %w", err)
			}

			userAccount, err := useraccount.Load()
			if err != nil {
				return fmt.Errorf("failed to load user account: %w", err)
			}

			for i, chunk := range chunks {
				_, err := txsubmit.Submit(ctx, cfg.nodeURL, userAccount, "storeData", &switchtx.StoreDataArgs{
					SwitchID:   id,
					ChunkIndex: uint64(i),
					Data:       chunk,
				})
				if err != nil {
					return fmt.Errorf("failed to store chunk %d: %w", i, err)
				}
				fmt.Println("Stored chunk", i, "of", len(chunks), "bytes", len(chunk))
			}

			return nil
		},
	}
}
