package usecase

import (
	"sync"

	protocolDomain "github.com/pinkoot/AI-Assistant/internal/protocol/domain"
)

// generationTracker hands out a monotonically increasing token per display slot. Only
// the holder of the latest token may write to the slot.
type generationTracker struct {
	mu      sync.Mutex
	current map[protocolDomain.Slot]uint64
}

func newGenerationTracker() *generationTracker {
	return &generationTracker{current: make(map[protocolDomain.Slot]uint64)}
}

// Next issues a new token for slot, superseding every earlier one.
func (g *generationTracker) Next(slot protocolDomain.Slot) uint64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.current[slot]++
	return g.current[slot]
}

// IsCurrent reports whether token is still the newest for slot.
func (g *generationTracker) IsCurrent(slot protocolDomain.Slot, token uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current[slot] == token
}
