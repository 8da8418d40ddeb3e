package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/theflywheel/chainhash"
)

func main() {
	metrics := &chainhash.BasicMetricsCollector{}

	t, err := chainhash.New[*string](
		chainhash.WithLogger(chainhash.NewTextLogger(slog.LevelDebug)),
		chainhash.WithMetricsCollector(metrics),
	)
	if err != nil {
		log.Fatalf("Failed to create table: %v", err)
	}
	defer t.Destroy()

	fmt.Println("Table created successfully")

	a := "First test string"
	b := "Second test string"
	c := "Third test string"
	d := "Fourth test string"
	e := "Fifth test string"
	f := "Sixth test string"
	g := "This really works! :)"

	raw := []byte("sixteen byte key")

	mustInsert(t.InsertInt(1, &a))
	mustInsert(t.InsertChar('a', &b))
	mustInsert(t.InsertText("string", &c))
	mustInsert(t.InsertInt(2, &d))
	mustInsert(t.InsertInt(3, &e))
	mustInsert(t.InsertInt(4, &f))
	mustInsert(t.InsertRaw(raw, &g))
	t.RemoveInt(2)

	show(t.FindInt(1))
	show(t.FindChar('a'))
	show(t.FindText("string"))
	show(t.FindInt(2))
	show(t.FindInt(3))
	show(t.FindInt(4))
	show(t.FindRaw(raw))

	s := t.Stats()
	fmt.Printf("Capacity %d, entries %d, longest chain %d, empty buckets %d\n",
		s.Capacity, s.Entries, s.LongestChain, s.EmptyBuckets)
	fmt.Printf("Inserts %d, hits %d, misses %d, resizes %d\n",
		metrics.Inserts.Load(), metrics.FindHits.Load(), metrics.FindMisses.Load(), metrics.Resizes.Load())

	fmt.Println("Example completed successfully")
}

func mustInsert(_ *string, err error) {
	if err != nil {
		log.Fatalf("Failed to insert: %v", err)
	}
}

func show(v *string, found bool) {
	if !found {
		fmt.Println("Not found")
		return
	}
	fmt.Printf("Found> %q\n", *v)
}
