// Package cliutil collects the small io.Writer helpers cmd/rewrap needs: a
// buffered writer with a pluggable flush policy (backing -in-place output
// before it's handed to renameio), a writer that latches the first error it
// hits (used to short-circuit the -debug dump loop), and a line-prefixing
// writer (also used by -debug).
package cliutil

import (
	"bytes"
	"io"
	"strings"
)

// WriteBuffer pairs a byte buffer with a destination writer and an optional
// flush policy. cmd/rewrap never calls MaybeFlush on its output WriteBuffer,
// so an entire run's output accumulates until it is either flushed to stdout
// or, for -in-place, handed as bytes to writeInPlace. Example use:
//
// 	var buf WriteBuffer
// 	buf.To = os.Stdout
// 	for _, p := range paragraphs {
// 		fmt.Fprintln(&buf, p)
// 		buf.MaybeFlush() // TODO errcheck
// 	}
// 	buf.Flush() // TODO errcheck
//
// The flush methods are ordinarily deferred when a function scope allows it.
type WriteBuffer struct {
	FlushPolicy
	To io.Writer
	bytes.Buffer
}

// FlushPolicy decides how many leading bytes of b a WriteBuffer should flush
// during MaybeFlush.
type FlushPolicy interface {
	ShouldFlush(b []byte) int
}

// FlushPolicyFunc adapts a plain function to FlushPolicy.
type FlushPolicyFunc func(b []byte) int

// ShouldFlush calls the receiver function pointer.
func (f FlushPolicyFunc) ShouldFlush(b []byte) int { return f(b) }

// Flush writes every byte currently buffered to To, regardless of
// FlushPolicy. Call it once after the main write phase is done.
func (buf *WriteBuffer) Flush() error {
	_, err := buf.WriteTo(buf.To)
	return err
}

// MaybeFlush writes the first N bytes of the buffer to To, where N is
// whatever FlushPolicy.ShouldFlush returns for the buffer's current
// contents, then discards those N bytes from the buffer. If FlushPolicy is
// nil, it defaults to FlushLineChunks.
func (buf *WriteBuffer) MaybeFlush() error {
	if buf.FlushPolicy == nil {
		buf.FlushPolicy = FlushPolicyFunc(FlushLineChunks)
	}
	b := buf.Bytes()
	if n := buf.ShouldFlush(b); n > 0 {
		m, err := buf.To.Write(b[:n])
		buf.Next(m)
		return err
	}
	return nil
}

// FlushLineChunks is a FlushPolicy(Func) that flushes as large a prefix of b
// as possible, through the last complete line (the last byte at or before a
// '\n').
func FlushLineChunks(b []byte) int {
	if i := bytes.LastIndexByte(b, '\n'); i >= 0 {
		return i + 1
	}
	return 0
}

// ErrWriter wraps a writer, remembering the first error any Write returns
// and refusing every subsequent write once that happens. cmd/rewrap wraps
// its -debug destination in one so a loop writing one block dump per
// paragraph can check Err once after the loop instead of after every write.
type ErrWriter struct {
	io.Writer
	Err error
}

// Write passes p through to the wrapped Writer as long as Err is still nil;
// once a write fails, every later call is a no-op that returns the latched
// error.
func (ew *ErrWriter) Write(p []byte) (n int, err error) {
	if ew.Err == nil {
		n, ew.Err = ew.Writer.Write(p)
	}
	return n, ew.Err
}

// PrefixWriter returns a writer that inserts prefix before every line
// written through it, flushing into w.
func PrefixWriter(prefix string, w io.Writer) *Prefixer {
	var p Prefixer
	p.Buffer.To = w
	p.Prefix = prefix
	return &p
}

// Prefixer inserts Prefix before every line written to it, flushing complete
// lines to an underlying writer. Construct with PrefixWriter. Set Skip true
// to suppress exactly the next prefix insertion.
type Prefixer struct {
	Prefix string
	Skip   bool
	Buffer WriteBuffer
}

// Close flushes any buffered bytes, including a partial final line, to the
// underlying writer.
func (p *Prefixer) Close() error { return p.Buffer.Flush() }

// Flush flushes any buffered bytes to the underlying writer.
func (p *Prefixer) Flush() error { return p.Buffer.Flush() }

// Write inserts Prefix before every line in b, then flushes all complete
// lines to the underlying writer.
func (p *Prefixer) Write(b []byte) (n int, err error) {
	first := true
	for len(b) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := b
		if i := bytes.IndexByte(b, '\n'); i >= 0 {
			i++
			line = b[:i]
			b = b[i:]
		} else {
			b = nil
		}
		m, _ := p.Buffer.Write(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

// WriteString is the string counterpart to Write.
func (p *Prefixer) WriteString(s string) (n int, err error) {
	first := true
	for len(s) > 0 {
		if !first {
			p.addPrefix()
		} else if i := p.Buffer.Len() - 1; i < 0 || p.Buffer.Bytes()[i] == '\n' {
			p.addPrefix()
			first = false
		} else {
			first = false
		}

		line := s
		if i := strings.IndexByte(s, '\n'); i >= 0 {
			i++
			line = s[:i]
			s = s[i:]
		} else {
			s = ""
		}
		m, _ := p.Buffer.WriteString(line)
		n += m
	}
	return n, p.Buffer.MaybeFlush()
}

func (p *Prefixer) addPrefix() {
	if p.Skip {
		p.Skip = false
	} else {
		p.Buffer.WriteString(p.Prefix)
	}
}
