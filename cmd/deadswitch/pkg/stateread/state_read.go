// Package stateread adapts eth_getStorageAt into the StateAccess interface,
// so the read commands decode remote contract storage with the exact codecs
// the processor writes with.
package stateread

import (
	"context"
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
)

var ErrReadOnly = errors.New("remote state is read-only")

type RemoteState struct {
	ctx    context.Context
	client *ethclient.Client
	err    error
}

func New(ctx context.Context, client *ethclient.Client) *RemoteState {
	return &RemoteState{ctx: ctx, client: client}
}

func (r *RemoteState) GetState(addr common.Address, key common.Hash) common.Hash {
	if r.err != nil {
		return common.Hash{}
	}

	d, err := r.client.StorageAt(r.ctx, addr, key, nil)
	if err != nil {
		r.err = err
		return common.Hash{}
	}
	return common.BytesToHash(d)
}

func (r *RemoteState) SetState(addr common.Address, key common.Hash, value common.Hash) common.Hash {
	r.err = ErrReadOnly
	return common.Hash{}
}

// Err returns the first error any read encountered; check it after decoding.
func (r *RemoteState) Err() error {
	return r.err
}
