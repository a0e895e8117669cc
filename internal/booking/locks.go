package booking

import "sync"

// lockTable hands out one mutex per room so that the overlap check and the
// subsequent insert in Book cannot interleave with another request's
// check-then-write for the same room.  Requests for different rooms do not
// contend with each other.
//
// Entries are never removed: the table grows with the number of distinct
// rooms booked through this process, which is bounded by the room catalog.
type lockTable struct {
    mu    sync.Mutex
    locks map[uint64]*sync.Mutex
}

func newLockTable() *lockTable {
    return &lockTable{locks: make(map[uint64]*sync.Mutex)}
}

// forRoom returns the mutex guarding the given room, creating it on first use.
func (t *lockTable) forRoom(roomID uint64) *sync.Mutex {
    t.mu.Lock()
    defer t.mu.Unlock()
    l, ok := t.locks[roomID]
    if !ok {
        l = &sync.Mutex{}
        t.locks[roomID] = l
    }
    return l
}
