package arb

import (
	"sync"

	"github.com/L3Sota/arbview/arb/model"
)

// Board holds the latest snapshot and scan result. Both are replaced
// wholesale, never edited in place.
type Board struct {
	mu   sync.RWMutex
	snap model.Snapshot
	opps []model.Opportunity
}

func (b *Board) Snapshot() model.Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.snap
}

func (b *Board) SetSnapshot(s model.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.snap = s
}

func (b *Board) Opportunities() []model.Opportunity {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.opps
}

func (b *Board) SetOpportunities(opps []model.Opportunity) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.opps = opps
}
