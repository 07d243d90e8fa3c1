package switchtx

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/rlp"
	"github.com/holiman/uint256"
)

// Argument shapes of the public call surface. Arguments and results travel
// as RLP.

type CreateSwitchArgs struct {
	Beneficiary common.Address
	Interval    uint64
	GracePeriod uint64
}

type SwitchIDArgs struct {
	SwitchID *uint256.Int
}

type StoreDataArgs struct {
	SwitchID   *uint256.Int
	ChunkIndex uint64
	Data       []byte
}

type StoreKeyArgs struct {
	SwitchID *uint256.Int
	Key      []byte
}

type UpdateBeneficiaryArgs struct {
	SwitchID       *uint256.Int
	NewBeneficiary common.Address
}

type UpdateIntervalArgs struct {
	SwitchID    *uint256.Int
	NewInterval uint64
}

type GetDataArgs struct {
	SwitchID   *uint256.Int
	ChunkIndex uint64
}

type OwnerArgs struct {
	Owner common.Address
}

type NoArgs struct{}

// operation is one dispatch table entry: how to decode the arguments, the
// handler, and how to encode the result.
type operation struct {
	decodeArgs   func([]byte) (any, error)
	apply        func(db StateAccess, ctx Context, args any) (any, []*types.Log, error)
	encodeResult func(any) ([]byte, error)
}

func decodeInto[T any](d []byte) (any, error) {
	v := new(T)
	if err := rlp.DecodeBytes(d, v); err != nil {
		return nil, err
	}
	return v, nil
}

func encodeRLP(v any) ([]byte, error) {
	return rlp.EncodeToBytes(v)
}

// operations is the full public call surface, declared statically and built
// once. Every write returns true on success; reads return their documented
// payloads.
var operations = map[string]operation{
	"createSwitch": {
		decodeArgs: decodeInto[CreateSwitchArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*CreateSwitchArgs)
			_, logs, err := CreateSwitch(db, ctx, a.Beneficiary, a.Interval, a.GracePeriod)
			return true, logs, err
		},
		encodeResult: encodeRLP,
	},
	"checkin": {
		decodeArgs: decodeInto[SwitchIDArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*SwitchIDArgs)
			logs, err := Checkin(db, ctx, a.SwitchID)
			return true, logs, err
		},
		encodeResult: encodeRLP,
	},
	"storeData": {
		decodeArgs: decodeInto[StoreDataArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*StoreDataArgs)
			logs, err := StoreData(db, ctx, a.SwitchID, a.ChunkIndex, a.Data)
			return true, logs, err
		},
		encodeResult: encodeRLP,
	},
	"storeDecryptionKey": {
		decodeArgs: decodeInto[StoreKeyArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*StoreKeyArgs)
			err := StoreDecryptionKey(db, ctx, a.SwitchID, a.Key)
			return true, nil, err
		},
		encodeResult: encodeRLP,
	},
	"trigger": {
		decodeArgs: decodeInto[SwitchIDArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*SwitchIDArgs)
			logs, err := Trigger(db, ctx, a.SwitchID)
			return true, logs, err
		},
		encodeResult: encodeRLP,
	},
	"cancel": {
		decodeArgs: decodeInto[SwitchIDArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*SwitchIDArgs)
			logs, err := Cancel(db, ctx, a.SwitchID)
			return true, logs, err
		},
		encodeResult: encodeRLP,
	},
	"updateBeneficiary": {
		decodeArgs: decodeInto[UpdateBeneficiaryArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*UpdateBeneficiaryArgs)
			logs, err := UpdateBeneficiary(db, ctx, a.SwitchID, a.NewBeneficiary)
			return true, logs, err
		},
		encodeResult: encodeRLP,
	},
	"updateInterval": {
		decodeArgs: decodeInto[UpdateIntervalArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*UpdateIntervalArgs)
			err := UpdateInterval(db, ctx, a.SwitchID, a.NewInterval)
			return true, nil, err
		},
		encodeResult: encodeRLP,
	},
	"getSwitch": {
		decodeArgs: decodeInto[SwitchIDArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*SwitchIDArgs)
			view, err := GetSwitch(db, a.SwitchID)
			return view, nil, err
		},
		encodeResult: encodeRLP,
	},
	"getData": {
		decodeArgs: decodeInto[GetDataArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*GetDataArgs)
			data, err := GetData(db, a.SwitchID, a.ChunkIndex)
			return data, nil, err
		},
		encodeResult: encodeRLP,
	},
	"getDecryptionKey": {
		decodeArgs: decodeInto[SwitchIDArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*SwitchIDArgs)
			key, err := GetDecryptionKey(db, a.SwitchID)
			return key, nil, err
		},
		encodeResult: encodeRLP,
	},
	"getSwitchCount": {
		decodeArgs: decodeInto[NoArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			return GetSwitchCount(db), nil, nil
		},
		encodeResult: encodeRLP,
	},
	"isExpired": {
		decodeArgs: decodeInto[SwitchIDArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*SwitchIDArgs)
			expired, err := IsExpired(db, ctx, a.SwitchID)
			return expired, nil, err
		},
		encodeResult: encodeRLP,
	},
	"getSwitchesByOwner": {
		decodeArgs: decodeInto[OwnerArgs],
		apply: func(db StateAccess, ctx Context, args any) (any, []*types.Log, error) {
			a := args.(*OwnerArgs)
			page, err := GetSwitchesByOwner(db, a.Owner)
			return page, nil, err
		},
		encodeResult: encodeRLP,
	},
}

// Dispatch routes one decoded call through the operation table.
func Dispatch(db StateAccess, ctx Context, op string, args []byte) ([]byte, []*types.Log, error) {
	entry, ok := operations[op]
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownOperation, op)
	}

	decoded, err := entry.decodeArgs(args)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s arguments: %w", op, err)
	}

	result, logs, err := entry.apply(db, ctx, decoded)
	if err != nil {
		return nil, nil, err
	}

	encoded, err := entry.encodeResult(result)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode %s result: %w", op, err)
	}

	return encoded, logs, nil
}
