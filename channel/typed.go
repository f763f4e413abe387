package channel

// Typed delivers discrete values of T.
type Typed[T any] interface {
	Channel
	// Read returns the next delivered value and true, or the zero value
	// and false if none is available (including when closed).
	Read() (T, bool)
	// ReadMaybe is the non-destructuring variant: nil when no value is
	// available.
	ReadMaybe() *T
}

// Void delivers readiness events with no payload ("ticks").
type Void interface {
	Channel
	// Tick consumes one pending readiness event, reporting whether one was
	// available.
	Tick() bool
}

// Stream delivers an unbounded byte stream.
type Stream interface {
	Channel
	// Read copies up to len(buf) bytes into buf, returning the count read.
	Read(buf []byte) (int, error)
	// Append reads up to BlockSize bytes and appends them to *dst,
	// returning the number of bytes appended.
	Append(dst *[]byte) (int, error)
	// ReadAll loops, appending to dst, until the channel closes.
	ReadAll(dst *[]byte) error
	// BlockSize returns the current per-Append read ceiling.
	BlockSize() int
	// SetBlockSize changes the per-Append read ceiling.
	SetBlockSize(n int)
}

// Socket is the network-boundary channel contract: payloads are raw bytes,
// accepted connections, or ready-set elements, and the channel is
// synchronous (pollable). No concrete network implementation lives in this
// module; production code supplies its own over whatever socket/TLS/QUIC
// stack it needs, and tests exercise the contract with a fake.
type Socket interface {
	Channel
	// ReadyKind reports what Read would currently yield without consuming
	// it: "bytes", "connection" or "ready".
	ReadyKind() string
}

const defaultBlockSize = 64 * 1024 // 64 KiB, per spec default.
