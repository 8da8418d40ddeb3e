package chainhash

// InsertInt stores value under an integer key of the native int width.
func (t *Table[V]) InsertInt(key int, value V) (V, error) {
	return t.insert(IntKey(key), value)
}

// FindInt looks up an integer key.
func (t *Table[V]) FindInt(key int) (V, bool) {
	return t.find(IntKey(key))
}

// RemoveInt removes an integer key.
func (t *Table[V]) RemoveInt(key int) (V, bool) {
	return t.remove(IntKey(key))
}

// InsertChar stores value under a one-byte key.
func (t *Table[V]) InsertChar(key byte, value V) (V, error) {
	return t.insert(CharKey(key), value)
}

// FindChar looks up a one-byte key.
func (t *Table[V]) FindChar(key byte) (V, bool) {
	return t.find(CharKey(key))
}

// RemoveChar removes a one-byte key.
func (t *Table[V]) RemoveChar(key byte) (V, bool) {
	return t.remove(CharKey(key))
}

// InsertText stores value under a text key. The key ends at the first NUL.
func (t *Table[V]) InsertText(key string, value V) (V, error) {
	return t.insert(TextKey(key), value)
}

// FindText looks up a text key.
func (t *Table[V]) FindText(key string) (V, bool) {
	return t.find(TextKey(key))
}

// RemoveText removes a text key.
func (t *Table[V]) RemoveText(key string) (V, bool) {
	return t.remove(TextKey(key))
}

// InsertRaw stores value under the bytes of key.
func (t *Table[V]) InsertRaw(key []byte, value V) (V, error) {
	return t.insert(RawKey(key), value)
}

// FindRaw looks up a raw key. It matches entries of any kind whose
// encoding equals key.
func (t *Table[V]) FindRaw(key []byte) (V, bool) {
	return t.find(RawKey(key))
}

// RemoveRaw removes the first entry of any kind whose encoding equals key.
func (t *Table[V]) RemoveRaw(key []byte) (V, bool) {
	return t.remove(RawKey(key))
}
