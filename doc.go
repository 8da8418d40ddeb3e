/*
Package chainhash provides an in-memory hash table whose keys can be integers,
single characters, null-terminated text or raw byte buffers, all stored in the
same table.

Table is designed to be small and predictable: every key is reduced to a kind
tag plus a byte encoding, the bytes are hashed with MurmurHash3 to pick a
bucket, and collisions are resolved with singly linked chains.

Basic usage:

	import "github.com/theflywheel/chainhash"

	t, err := chainhash.New[string]()
	if err != nil {
		log.Fatal(err)
	}
	defer t.Destroy()

	// Insert data
	t.InsertInt(1, "one")
	t.InsertText("name", "chainhash")
	t.InsertRaw([]byte{0xde, 0xad}, "beef")

	// Retrieve data
	if v, ok := t.FindText("name"); ok {
		fmt.Println("Value:", v)
	}

Features:

  - One table for integer, char, text and raw keys
  - MurmurHash3 x86_32 bucket hashing, with xxHash and XXH3 as alternatives
  - Separate chaining, new entries prepended to their chain
  - Capacity doubles when an insert walks a chain of load-factor entries
  - Lookups report a miss explicitly, so stored zero values are unambiguous

Key Equality:

Integer, char and text keys only match entries of the same kind. Raw keys are
the exception: a raw key matches any entry with the same length and bytes,
whatever kind it was stored under. For example, on a 64-bit platform
FindRaw of the eight little-endian bytes of 7 returns the value stored by
InsertInt(7, ...), while FindText never sees integer entries.

Ownership:

The table copies key bytes on first insert and owns them. Values are never
copied, inspected or released; Destroy drops the table's references and
nothing else.

Implementation Details:

The table starts with 8 buckets and a load factor of 4. Under the default
GrowPerChain policy, an insert that walked at least 4 entries of its bucket
before matching or reaching the end doubles the bucket array and rehashes
every entry, even if the other buckets are empty. GrowGlobalLoad instead
compares the total number of entries to capacity times load factor. The
bucket array never shrinks.

A Table is not safe for concurrent use.
*/
package chainhash
