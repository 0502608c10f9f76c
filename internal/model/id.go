package model

import (
	"fmt"
	"sync/atomic"
	"time"
)

var idSeq atomic.Int64

// NewID generates a client-style entity id: a short type prefix plus a
// millisecond timestamp. A process-local sequence number keeps ids unique
// when several entities are created within the same millisecond.
func NewID(prefix string) string {
	return fmt.Sprintf("%s-%d-%d", prefix, time.Now().UnixMilli(), idSeq.Add(1))
}
