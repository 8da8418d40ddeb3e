package chainhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainKeys(t *testing.T, tbl *Table[int], bucket int) []int {
	t.Helper()
	var out []int
	for e := tbl.buckets[bucket]; e != nil; e = e.next {
		out = append(out, int(e.key[0]))
	}
	return out
}

func assertBucketInvariant[V any](t *testing.T, tbl *Table[V]) {
	t.Helper()
	for b, head := range tbl.buckets {
		for e := head; e != nil; e = e.next {
			require.Equal(t, b, int(tbl.opts.hasher(e.stored())%uint32(len(tbl.buckets))),
				"entry %x in wrong bucket", e.stored())
		}
	}
}

func TestEntriesStayInTheirBucket(t *testing.T) {
	tbl, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 2000; i++ {
		_, err := tbl.InsertInt(i, i)
		require.NoError(t, err)
		if i%97 == 0 {
			assertBucketInvariant(t, tbl)
		}
	}
	for i := 0; i < 300; i++ {
		_, err := tbl.InsertText(string(rune('A'+i%26))+string(rune('a'+i%17)), i)
		require.NoError(t, err)
	}
	assertBucketInvariant(t, tbl)
}

func TestNewEntriesArePrepended(t *testing.T) {
	tbl, err := New[int](WithHasher(func([]byte) uint32 { return 3 }))
	require.NoError(t, err)

	for _, c := range []byte{1, 2, 3} {
		_, err := tbl.InsertChar(c, int(c))
		require.NoError(t, err)
	}
	assert.Equal(t, []int{3, 2, 1}, chainKeys(t, tbl, 3))
}

func TestRemovePatchesChain(t *testing.T) {
	newChain := func() *Table[int] {
		tbl, err := New[int](WithHasher(func([]byte) uint32 { return 0 }))
		require.NoError(t, err)
		for _, c := range []byte{1, 2, 3} {
			_, err := tbl.InsertChar(c, int(c))
			require.NoError(t, err)
		}
		return tbl
	}

	testCases := []struct {
		name   string
		remove byte
		want   []int
	}{
		{"head", 3, []int{2, 1}},
		{"middle", 2, []int{3, 1}},
		{"tail", 1, []int{3, 2}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tbl := newChain()
			v, ok := tbl.RemoveChar(tc.remove)
			require.True(t, ok)
			assert.Equal(t, int(tc.remove), v)
			assert.Equal(t, tc.want, chainKeys(t, tbl, 0))
			assert.Equal(t, 2, tbl.Len())
		})
	}
}

func TestTextKeyStorage(t *testing.T) {
	tbl, err := New[int]()
	require.NoError(t, err)

	_, err = tbl.InsertText("string", 1)
	require.NoError(t, err)

	b := tbl.bucketFor([]byte("string"), tbl.Capacity())
	e := tbl.buckets[b]
	require.NotNil(t, e)
	assert.Equal(t, KindText, e.kind)
	assert.Equal(t, 6, e.keyLen)
	assert.Equal(t, []byte("string\x00"), e.key, "text keys keep a terminator")
	assert.Equal(t, []byte("string"), e.stored())
}

func TestOverwriteKeepsKeyBuffer(t *testing.T) {
	tbl, err := New[int]()
	require.NoError(t, err)

	_, err = tbl.Insert(IntKey(int32(5)), 1)
	require.NoError(t, err)

	b := tbl.bucketFor(IntKey(int32(5)).Bytes(), tbl.Capacity())
	before := tbl.buckets[b]

	_, err = tbl.InsertRaw([]byte{5, 0, 0, 0}, 2)
	require.NoError(t, err)

	after := tbl.buckets[b]
	assert.Same(t, before, after)
	assert.Equal(t, KindInteger, after.kind, "raw overwrite keeps the stored kind")
	assert.Equal(t, 2, after.value)
}

func TestKeyMatches(t *testing.T) {
	testCases := []struct {
		name       string
		key        Key
		storedKind KeyKind
		stored     []byte
		want       bool
	}{
		{"same_kind_same_bytes", CharKey('a'), KindChar, []byte("a"), true},
		{"other_kind_same_bytes", CharKey('a'), KindText, []byte("a"), false},
		{"same_kind_other_bytes", TextKey("ab"), KindText, []byte("ac"), false},
		{"same_kind_prefix", TextKey("str"), KindText, []byte("string"), false},
		{"raw_matches_integer", RawKey([]byte{1, 0, 0, 0}), KindInteger, []byte{1, 0, 0, 0}, true},
		{"raw_matches_text", RawKey([]byte("abc")), KindText, []byte("abc"), true},
		{"raw_length_mismatch", RawKey([]byte{1, 0}), KindInteger, []byte{1, 0, 0, 0}, false},
		{"integer_does_not_match_raw_entry", IntKey(int8(1)), KindRaw, []byte{1}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.key.matches(tc.storedKind, tc.stored))
		})
	}
}

func TestOwnedCopy(t *testing.T) {
	src := []byte("abc")
	k := RawKey(src)
	owned := k.ownedCopy()
	src[0] = 'x'
	assert.Equal(t, []byte("abc"), owned)

	assert.Len(t, TextKey("abc").ownedCopy(), 4)
	assert.Len(t, CharKey('c').ownedCopy(), 1)
}

func TestResizeRelinksEveryEntry(t *testing.T) {
	tbl, err := New[int]()
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		_, err := tbl.InsertInt(i, i)
		require.NoError(t, err)
	}
	before := tbl.Stats().Entries

	tbl.resize(tbl.Capacity() * 2)
	assertBucketInvariant(t, tbl)
	assert.Equal(t, before, tbl.Stats().Entries)
	assert.Equal(t, before, tbl.Len())
}
