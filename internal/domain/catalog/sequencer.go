package catalog

import (
	"context"
	"fmt"
)

// SequencerMode selects how the next product id is derived.
type SequencerMode int

const (
	// ModeLastInserted assigns ids as "id of the most recently inserted
	// product, plus one". This matches the legacy backend exactly: after
	// deleting non-trailing products the next id can collide with or skip
	// over live ids, because no max scan is performed.
	ModeLastInserted SequencerMode = iota
	// ModeTrueMax assigns max(existing id) + 1
	ModeTrueMax
)

func (m SequencerMode) String() string {
	switch m {
	case ModeLastInserted:
		return "last-inserted"
	case ModeTrueMax:
		return "max"
	default:
		return fmt.Sprintf("SequencerMode(%d)", int(m))
	}
}

// Sequencer assigns monotonically increasing product ids
type Sequencer struct {
	store Store
	mode  SequencerMode
}

func NewSequencer(store Store, mode SequencerMode) *Sequencer {
	return &Sequencer{store: store, mode: mode}
}

// NextID returns the id for the next product to be created, 1 when the
// catalog is empty.
func (s *Sequencer) NextID(ctx context.Context) (int64, error) {
	if s.mode == ModeTrueMax {
		maxID, err := s.store.MaxID(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to scan max id: %w", err)
		}
		return maxID + 1, nil
	}

	lastID, ok, err := s.store.LastID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read last id: %w", err)
	}
	if !ok {
		return 1, nil
	}
	return lastID + 1, nil
}
