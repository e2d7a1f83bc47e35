package tree

const arenaChunkSize = 4096

// Arena is append-only byte storage.  Spans returned by Alloc and Copy are
// never moved or grown in place, so they stay valid for the lifetime of
// the arena.
type Arena struct {
	chunks [][]byte
	size   int
}

// Alloc returns a fresh span of n bytes.
func (a *Arena) Alloc(n int) []byte {
	if n == 0 {
		return nil
	}
	a.size += n
	if k := len(a.chunks) - 1; k >= 0 {
		cur := a.chunks[k]
		if len(cur)+n <= cap(cur) {
			a.chunks[k] = cur[:len(cur)+n]
			return a.chunks[k][len(cur) : len(cur)+n]
		}
	}
	sz := arenaChunkSize
	if n > sz {
		sz = n
	}
	chunk := make([]byte, n, sz)
	a.chunks = append(a.chunks, chunk)
	return chunk
}

// Copy copies s into the arena and returns the stable span.
func (a *Arena) Copy(s []byte) []byte {
	b := a.Alloc(len(s))
	copy(b, s)
	return b
}

// CopyString copies s into the arena and returns the stable span.
func (a *Arena) CopyString(s string) []byte {
	b := a.Alloc(len(s))
	copy(b, s)
	return b
}

// Size is the total number of bytes allocated.
func (a *Arena) Size() int { return a.size }
