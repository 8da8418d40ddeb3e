package chainhash

import (
	"bytes"
	"encoding/binary"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// KeyKind records how a key was encoded when it was inserted.
type KeyKind uint8

const (
	KindInteger KeyKind = iota
	KindChar
	KindText
	KindRaw
)

// String implements fmt.Stringer.
func (k KeyKind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindChar:
		return "char"
	case KindText:
		return "text"
	case KindRaw:
		return "raw"
	default:
		return "unknown"
	}
}

// Key is a tagged key: the kind plus the exact bytes that are hashed and
// compared. Build one with IntKey, CharKey, TextKey or RawKey.
//
// A Key only borrows its bytes; the table copies them on first insert.
type Key struct {
	kind KeyKind
	b    []byte
}

// Kind returns the key's encoding tag.
func (k Key) Kind() KeyKind { return k.kind }

// Bytes returns the encoded key. The slice must not be modified.
func (k Key) Bytes() []byte { return k.b }

// Len returns the logical key length used for hashing and comparison.
func (k Key) Len() int { return len(k.b) }

// IntKey encodes v as a fixed-width little-endian integer key.
// The width is that of T, so IntKey(int32(1)) and IntKey(int64(1)) are
// different keys.
func IntKey[T constraints.Integer](v T) Key {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	size := int(unsafe.Sizeof(v))
	return Key{kind: KindInteger, b: buf[:size:size]}
}

// CharKey encodes c as a one-byte key.
func CharKey(c byte) Key {
	return Key{kind: KindChar, b: []byte{c}}
}

// TextKey encodes s as a null-terminated text key. Bytes from the first
// NUL onward are not part of the key.
func TextKey(s string) Key {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return Key{kind: KindText, b: []byte(s)}
}

// RawKey uses b verbatim. Raw keys are compared by content and length only,
// so a raw lookup also matches entries stored under another kind with the
// same encoding.
func RawKey(b []byte) Key {
	return Key{kind: KindRaw, b: b}
}

// matches reports whether an incoming key of this kind selects a stored
// entry with the given kind and logical key bytes.
func (k Key) matches(kind KeyKind, stored []byte) bool {
	if len(stored) != len(k.b) {
		return false
	}
	if k.kind == KindRaw {
		// Raw ignores the stored kind.
		return bytes.Equal(stored, k.b)
	}
	return kind == k.kind && bytes.Equal(stored, k.b)
}

// ownedCopy returns the buffer an entry keeps for k. Text keys carry one
// extra zero byte past the logical length.
func (k Key) ownedCopy() []byte {
	n := len(k.b)
	if k.kind == KindText {
		buf := make([]byte, n+1)
		copy(buf, k.b)
		return buf
	}
	buf := make([]byte, n)
	copy(buf, k.b)
	return buf
}
