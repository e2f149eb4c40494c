package service

import "sync"

// productLocks hands out one mutex per product id. The mutex serializes the
// read-compute-write-append critical section in process, on top of the row
// lock the database transaction takes. Entries are never removed; the set is
// bounded by the product catalog.
type productLocks struct {
	locks sync.Map // uint -> *sync.Mutex
}

func (p *productLocks) lock(productID uint) *sync.Mutex {
	mu, _ := p.locks.LoadOrStore(productID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m
}
