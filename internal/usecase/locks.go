package usecase

import (
	"hash/fnv"
	"sync"
)

const lockStripes = 64

// accountLocks serializes the funds-check-then-append sequence per account.
// Two concurrent debits against the same account must not both pass the
// check against the same pre-insertion snapshot.
type accountLocks struct {
	stripes [lockStripes]sync.Mutex
}

// Lock acquires the stripe for an account id and returns its unlock func.
func (l *accountLocks) Lock(accountID string) func() {
	h := fnv.New32a()
	h.Write([]byte(accountID))

	mu := &l.stripes[h.Sum32()%lockStripes]
	mu.Lock()

	return mu.Unlock
}
