package wire

import (
	"bufio"
	"io"

	"stompsession/frame"
)

// EncodeFrame writes a complete frame (command, headers, blank line, body,
// trailing NUL) to w. Headers are written in the order they were appended,
// preserving any duplicates — STOMP imposes no ordering requirement beyond
// "first occurrence wins" on the reading side.
func EncodeFrame(w io.Writer, f *frame.Frame) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(f.Command); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for _, h := range f.Headers {
		if _, err := bw.WriteString(h.Key); err != nil {
			return err
		}
		if err := bw.WriteByte(':'); err != nil {
			return err
		}
		if _, err := bw.WriteString(h.Value); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	if len(f.Body) > 0 {
		if _, err := bw.Write(f.Body); err != nil {
			return err
		}
	}
	if err := bw.WriteByte(0); err != nil {
		return err
	}
	return bw.Flush()
}

// EncodeHeartBeat writes a single heartbeat pulse.
func EncodeHeartBeat(w io.Writer) error {
	_, err := w.Write([]byte{'\n'})
	return err
}
