package switchtx

import (
	"fmt"

	"github.com/holiman/uint256"

	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil"
	"github.com/bc1plainview/opswitch-v2/deadswitch/storageutil/records"
)

type StateAccess = storageutil.StateAccess

// Preconditions are re-validated from durable storage at the start of every
// operation; any number of other transactions may have run since the caller
// last looked.

func requireExists(db StateAccess, id *uint256.Int) error {
	if !records.Exists(db, id) {
		return fmt.Errorf("%w: id %s", ErrSwitchNotFound, id)
	}
	return nil
}

func requireOwner(db StateAccess, ctx Context, id *uint256.Int) error {
	if err := requireExists(db, id); err != nil {
		return err
	}
	if records.GetOwner(db, id) != ctx.Caller {
		return fmt.Errorf("%w: switch %s, caller %s", ErrNotOwner, id, ctx.Caller.Hex())
	}
	return nil
}

func requireActive(db StateAccess, id *uint256.Int) error {
	if status := records.GetStatus(db, id); status != records.StatusActive {
		return fmt.Errorf("%w: switch %s is %s", ErrNotActive, id, status)
	}
	return nil
}
