// ABOUTME: sync.Pool wrapper for bytes.Buffer used to compose output frames
// ABOUTME: One buffer per frame avoids reallocating on every redraw

package pool

import (
	"bytes"
	"sync"
)

// maxPooledSize caps buffers returned to the pool so one huge frame does
// not pin its memory forever.
const maxPooledSize = 1 << 20

var bytesBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// GetBytesBuffer returns an empty bytes.Buffer from the pool.
func GetBytesBuffer() *bytes.Buffer {
	buf := bytesBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

// PutBytesBuffer returns a bytes.Buffer to the pool.
func PutBytesBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledSize {
		return
	}
	buf.Reset()
	bytesBufferPool.Put(buf)
}
