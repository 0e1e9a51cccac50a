package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	mu   sync.Mutex
	mono io.Reader
)

func init() {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	mono = ulid.Monotonic(rand.New(rand.NewSource(seed)), 0)
}

// Movement returns a ULID for a ledger movement dated t. IDs generated
// within the same millisecond stay lexicographically increasing. Dates
// before the Unix epoch, which a ULID cannot carry, get the epoch timestamp.
func Movement(t time.Time) string {
	mu.Lock()
	defer mu.Unlock()

	var ms uint64
	if t.After(time.UnixMilli(0)) {
		ms = ulid.Timestamp(t)
	}

	id, err := ulid.New(ms, mono)
	if err != nil {
		// Only possible if the monotonic entropy overflows.
		panic(err)
	}
	return id.String()
}

// Request returns a random identifier for a deferred request such as a loan.
func Request() uuid.UUID {
	return uuid.New()
}
