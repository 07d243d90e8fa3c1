package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/account"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/cancel"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/cat"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/checkin"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/create"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/list"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/status"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/storedata"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/storekey"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/trigger"
	"github.com/bc1plainview/opswitch-v2/cmd/deadswitch/update"
)

func main() {

	app := &cli.App{
		Name:  "deadswitch CLI",
		Usage: "Dead man's switch",

		Commands: []*cli.Command{
			account.Account(),
			create.Create(),
			checkin.Checkin(),
			storedata.StoreData(),
			storekey.StoreKey(),
			update.Update(),
			trigger.Trigger(),
			cancel.Cancel(),
			status.Status(),
			list.List(),
			cat.Cat(),
			cat.Key(),
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}
