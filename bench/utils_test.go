package bench_test

import (
	"crypto/rand"
	"fmt"
	"runtime"
	"testing"
	"time"
)

// getMemoryUsage returns the current heap usage as a formatted string
func getMemoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("Memory: Alloc=%.1fMB Sys=%.1fMB",
		float64(m.Alloc)/1024/1024,
		float64(m.Sys)/1024/1024)
}

// heapAlloc returns the bytes currently allocated on the heap after a GC
func heapAlloc() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

// reportRate records ops/sec for a phase of a benchmark
func reportRate(b *testing.B, name string, ops int, elapsed time.Duration) {
	b.ReportMetric(float64(ops)/elapsed.Seconds(), name+"/sec")
}

// generateUUID creates a random 16-byte UUID
func generateUUID() []byte {
	uuid := make([]byte, 16)
	if _, err := rand.Read(uuid); err != nil {
		panic(err)
	}
	// Set version (4) and variant (RFC4122)
	uuid[6] = (uuid[6] & 0x0F) | 0x40
	uuid[8] = (uuid[8] & 0x3F) | 0x80
	return uuid
}
