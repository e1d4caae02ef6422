package cart

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Order numbers follow the display convention ORD-<unixMillis>-<3 digits>.
// The random suffix alone cannot keep many orders in the same millisecond
// distinct, so the generator tracks suffixes it has handed out per
// millisecond and re-rolls on collision. When a millisecond is exhausted it
// borrows the next one.
var (
	ordMu     sync.Mutex
	ordLastMs int64
	ordUsed   map[int]struct{}
)

func NewOrderNumber() string {
	ms := time.Now().UnixMilli()

	ordMu.Lock()
	defer ordMu.Unlock()

	if ms < ordLastMs {
		ms = ordLastMs // clock went backwards; stay monotonic
	}
	if ms != ordLastMs {
		ordLastMs = ms
		ordUsed = make(map[int]struct{}, 4)
	}
	for {
		if len(ordUsed) == 1000 {
			ordLastMs++
			ms = ordLastMs
			ordUsed = make(map[int]struct{}, 4)
		}
		n := rand.Intn(1000)
		if _, taken := ordUsed[n]; taken {
			continue
		}
		ordUsed[n] = struct{}{}
		return fmt.Sprintf("ORD-%d-%03d", ms, n)
	}
}
