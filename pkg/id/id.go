// Package id generates the opaque identifiers used for journal
// records and stored screenshot files.
package id

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
)

func init() {
	seed := time.Now().UnixNano()
	var b [8]byte
	if _, err := cryptorand.Read(b[:]); err == nil {
		seed = int64(binary.LittleEndian.Uint64(b[:]))
	}
	entropy = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// New returns a fresh ULID string. IDs sort by creation time, so
// screenshot directory listings and the sqlite primary key stay in
// log order, and two calls in the same millisecond still increase.
func New() string {
	mu.Lock()
	defer mu.Unlock()
	return ulid.MustNew(ulid.Now(), entropy).String()
}
