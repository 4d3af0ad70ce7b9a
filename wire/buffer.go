// Package wire implements the STOMP 1.2 frame codec: encoding a Frame onto
// an io.Writer, and FrameBuffer, a reusable byte accumulator that turns an
// unbounded, possibly fragmented, byte stream into a sequence of
// Transmissions.
//
// This is the "frame codec" and "frame buffer" the session spec treats as
// an external collaborator (parse_transmission / encode_frame). Session
// never parses bytes itself — it only drives FrameBuffer.
package wire

import (
	"bytes"
	"strconv"
	"strings"

	"stompsession/frame"
)

// FrameBuffer accumulates bytes appended by the reader and lazily yields
// Transmissions. Partial data is preserved across calls; nothing is parsed
// until ReadTransmission is called.
type FrameBuffer struct {
	buf    []byte
	cursor int
	closed bool

	freeFrames []*frame.Frame // recycled allocations, LIFO
}

// NewFrameBuffer returns an empty FrameBuffer.
func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// Append adds newly read bytes to the accumulator.
func (b *FrameBuffer) Append(data []byte) {
	b.buf = append(b.buf, data...)
}

// MarkClosed records that the feeder (the socket reader) observed EOF.
// Once set, ReadTransmission returns ConnectionClosed once the buffered
// bytes are exhausted.
func (b *FrameBuffer) MarkClosed() {
	b.closed = true
}

// Len returns the number of unconsumed buffered bytes.
func (b *FrameBuffer) Len() int {
	return len(b.buf) - b.cursor
}

// Reset discards all buffered bytes and clears the closed flag. Session's
// reconnect path does not call it: each new connection gets a new
// FrameBuffer instead.
func (b *FrameBuffer) Reset() {
	b.buf = b.buf[:0]
	b.cursor = 0
	b.closed = false
}

// Recycle hands a consumed frame's header and body allocations back to the
// buffer for reuse by a future CompleteFrame. It is a performance hint only
// — skipping it is always safe.
func (b *FrameBuffer) Recycle(f *frame.Frame) {
	f.Reset()
	b.freeFrames = append(b.freeFrames, f)
}

func (b *FrameBuffer) takeFrame() *frame.Frame {
	if n := len(b.freeFrames); n > 0 {
		f := b.freeFrames[n-1]
		b.freeFrames = b.freeFrames[:n-1]
		return f
	}
	return &frame.Frame{}
}

// compact drops already-consumed bytes once the unconsumed remainder is
// small relative to the buffer, so a long-lived connection doesn't grow the
// accumulator without bound.
func (b *FrameBuffer) compact() {
	if b.cursor == 0 {
		return
	}
	if b.cursor < len(b.buf)/2 && len(b.buf) < 64*1024 {
		return
	}
	remaining := b.Len()
	copy(b.buf, b.buf[b.cursor:])
	b.buf = b.buf[:remaining]
	b.cursor = 0
}

// ReadTransmission consumes from the head of the buffer and returns the
// next Transmission, or Kind == None if more bytes are required. It never
// blocks and consumes no bytes on an incomplete parse.
func (b *FrameBuffer) ReadTransmission() (Transmission, error) {
	defer b.compact()

	if b.Len() == 0 {
		if b.closed {
			return Transmission{Kind: ConnectionClosed}, nil
		}
		return Transmission{Kind: None}, nil
	}

	if b.buf[b.cursor] == '\n' {
		b.cursor++
		return Transmission{Kind: HeartBeat}, nil
	}
	if b.buf[b.cursor] == '\r' && b.Len() >= 2 && b.buf[b.cursor+1] == '\n' {
		b.cursor += 2
		return Transmission{Kind: HeartBeat}, nil
	}

	f, consumed, err := b.tryParseFrame(b.buf[b.cursor:])
	if err != nil {
		return Transmission{}, err
	}
	if f == nil {
		return Transmission{Kind: None}, nil
	}
	b.cursor += consumed
	return Transmission{Kind: CompleteFrame, Frame: f}, nil
}

// tryParseFrame attempts to parse one complete frame from data, which
// begins at the first byte of a command line (heartbeats have already been
// stripped by the caller). Returns (nil, 0, nil) if data is an incomplete
// prefix of a frame.
func (b *FrameBuffer) tryParseFrame(data []byte) (*frame.Frame, int, error) {
	lineEnd := bytes.IndexByte(data, '\n')
	if lineEnd < 0 {
		return nil, 0, nil
	}
	command := strings.TrimSuffix(string(data[:lineEnd]), "\r")
	if command == "" {
		return nil, 0, ErrMalformedFrame
	}

	pos := lineEnd + 1
	f := b.takeFrame()
	f.Command = command

	for {
		next := bytes.IndexByte(data[pos:], '\n')
		if next < 0 {
			return nil, 0, nil
		}
		line := strings.TrimSuffix(string(data[pos:pos+next]), "\r")
		pos += next + 1
		if line == "" {
			break
		}
		sep := strings.IndexByte(line, ':')
		if sep < 0 {
			return nil, 0, ErrHeaderLine
		}
		f.Append(line[:sep], line[sep+1:])
	}

	bodyLen, hasLength, err := contentLength(f)
	if err != nil {
		return nil, 0, err
	}

	var body []byte
	var end int
	if hasLength {
		end = pos + bodyLen
		if end+1 > len(data) {
			return nil, 0, nil
		}
		if data[end] != 0 {
			return nil, 0, ErrMalformedFrame
		}
		body = data[pos:end]
	} else {
		nul := bytes.IndexByte(data[pos:], 0)
		if nul < 0 {
			return nil, 0, nil
		}
		end = pos + nul
		body = data[pos:end]
	}

	f.Body = append(f.Body[:0], body...)
	return f, end + 1, nil
}

func contentLength(f *frame.Frame) (int, bool, error) {
	v, ok := f.Get(frame.HdrContentLength)
	if !ok {
		return 0, false, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, false, ErrMalformedFrame
	}
	return n, true, nil
}
