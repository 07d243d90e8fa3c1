package storageutil

import (
	"github.com/ethereum/go-ethereum/common"
)

// StagedWrites buffers all SetState calls of a single operation so that a
// failed operation leaves the underlying state untouched. Reads observe the
// staged values, so the operation sees its own writes.
type StagedWrites struct {
	inner  StateAccess
	writes map[common.Address]map[common.Hash]common.Hash
}

func NewStagedWrites(inner StateAccess) *StagedWrites {
	return &StagedWrites{
		inner:  inner,
		writes: make(map[common.Address]map[common.Hash]common.Hash),
	}
}

func (s *StagedWrites) GetState(addr common.Address, key common.Hash) common.Hash {
	if staged, ok := s.writes[addr]; ok {
		if v, ok := staged[key]; ok {
			return v
		}
	}
	return s.inner.GetState(addr, key)
}

func (s *StagedWrites) SetState(addr common.Address, key common.Hash, value common.Hash) common.Hash {
	prev := s.GetState(addr, key)

	staged := s.writes[addr]
	if staged == nil {
		staged = make(map[common.Hash]common.Hash)
		s.writes[addr] = staged
	}
	staged[key] = value

	return prev
}

// Commit flushes every staged write to the underlying state. After Commit the
// stage is empty and the StagedWrites can be reused for a new operation.
func (s *StagedWrites) Commit() {
	for addr, staged := range s.writes {
		for key, value := range staged {
			s.inner.SetState(addr, key, value)
		}
	}
	s.writes = make(map[common.Address]map[common.Hash]common.Hash)
}

// Discard drops every staged write.
func (s *StagedWrites) Discard() {
	s.writes = make(map[common.Address]map[common.Hash]common.Hash)
}
