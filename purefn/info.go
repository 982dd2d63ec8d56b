package purefn

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
)

// Manager is the cache management surface every decorated function exposes.
type Manager interface {
	CacheInfo() Info
	CacheClear()
}

// Info is a snapshot of a decorated function's table.
//
// ID identifies the decorated function in logs and metrics. Size is the
// number of entries currently held. MaxSize is the capacity, 0 meaning
// caching is disabled; it is meaningless when Unbounded is set.
type Info struct {
	ID        uuid.UUID
	Hits      uint64
	Misses    uint64
	Evictions uint64
	Size      int
	MaxSize   int
	Unbounded bool
}

func (i Info) String() string {
	maxSize := strconv.Itoa(i.MaxSize)
	if i.Unbounded {
		maxSize = "None"
	}
	return fmt.Sprintf("CacheInfo(hits=%d, misses=%d, maxsize=%s, currsize=%d)", i.Hits, i.Misses, maxSize, i.Size)
}
