package cat

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/holiman/uint256"
	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/payload"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/pkg/stateread"
	"github.com/bc1plainview/opswitch-v2/deadswitch/switchtx"
)

func Cat() *cli.Command {

	cfg := struct {
		nodeURL string
	}{}
	return &cli.Command{
		Name:      "cat",
		Usage:     "Reassemble the stored payload of a switch and write it to stdout",
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

			remote := stateread.New(ctx, client)

			view, err := switchtx.GetSwitch(remote, id)
			if err != nil {
				return err
			}

			chunks := make([][]byte, 0, view.ChunkCount)
			for i := uint64(0); i < view.ChunkCount; i++ {
				chunk, err := switchtx.GetData(remote, id, i)
				if err != nil {
					return fmt.Errorf("failed to read chunk %d: %w", i, err)
				}
				chunks = append(chunks, chunk)
			}
			if err := remote.Err(); err != nil {
				return fmt.Errorf("failed to read switch state: %w", err)
			}

			data, err := payload.Join(chunks)
			if err != nil {
				return fmt.Errorf("failed to unpack payload: %w", err)
			}

			_, err = os.Stdout.Write(data)
			return err
		},
	}
}

// Key returns the command that fetches the released decryption key.
func Key() *cli.Command {

	cfg := struct {
		nodeURL string
	}{}
	return &cli.Command{
		Name:      "key",
		Usage:     "Fetch the decryption key of a triggered switch and write it to stdout",
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

			remote := stateread.New(ctx, client)

			key, err := switchtx.GetDecryptionKey(remote, id)
			if err != nil {
				return err
			}
			if err := remote.Err(); err != nil {
				return fmt.Errorf("failed to read switch state: %w", err)
			}

			_, err = os.Stdout.Write(key)
			return err
		},
	}
}
