package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pamburus/ansitty"
	"github.com/pamburus/bytebuf"
)

type arguments struct {
	Files    []string `arg:"positional" help:"input files (stdin if none)"`
	Capacity int      `arg:"-c,--capacity" default:"4096" help:"initial buffer capacity in bytes"`
	Chunk    int      `arg:"--chunk" default:"4096" help:"read chunk size in bytes"`
	Hex      bool     `arg:"-x,--hex" help:"write a hex dump instead of raw bytes"`
	Color    string   `arg:"--color" default:"auto" help:"hex dump color: auto, always or never"`
}

func (arguments) Description() string {
	return "bufcat streams input through a bytebuf buffer and writes it to stdout"
}

func main() {
	var args arguments
	arg.MustParse(&args)

	var color bool
	switch args.Color {
	case "always":
		ansitty.Enable(os.Stdout)
		color = true
	case "never":
		color = false
	default:
		color = ansitty.Enable(os.Stdout)
	}

	var out sink = rawSink{os.Stdout}
	if args.Hex {
		out = &hexSink{out: os.Stdout, color: color}
	}

	buf := bytebuf.WithCapacity(args.Capacity)

	inputs := []string{"-"}
	if len(args.Files) != 0 {
		inputs = args.Files
	}

	for _, name := range inputs {
		if err := pump(buf, name, args.Chunk, out); err != nil {
			log.Fatal(err)
		}
	}

	if err := out.Flush(buf); err != nil {
		log.Fatal(err)
	}
}

func pump(buf *bytebuf.Buffer, name string, chunk int, out sink) error {
	in := os.Stdin
	if name != "-" {
		var err error
		in, err = os.Open(name)
		if err != nil {
			return err
		}
		defer in.Close()
	}

	for {
		buf.Grow(chunk)
		tail := buf.Tail()
		if len(tail) > chunk {
			tail = tail[:chunk]
		}

		n, err := in.Read(tail)
		if n > 0 {
			if err := buf.Commit(n); err != nil {
				return err
			}
			if err := out.Drain(buf); err != nil {
				return err
			}
			// Reclaim the consumed prefix, otherwise capacity grows with the
			// total streamed size instead of staying near one chunk.
			if buf.Len() == 0 {
				buf.Reset()
			} else {
				buf.Compact()
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ---

// sink consumes buffered bytes between reads. Drain may leave a partial tail
// in the buffer; Flush must consume everything.
type sink interface {
	Drain(*bytebuf.Buffer) error
	Flush(*bytebuf.Buffer) error
}

// ---

type rawSink struct {
	out io.Writer
}

func (s rawSink) Drain(buf *bytebuf.Buffer) error {
	_, err := buf.WriteTo(s.out)

	return err
}

func (s rawSink) Flush(buf *bytebuf.Buffer) error {
	return s.Drain(buf)
}

// ---

const bytesPerLine = 16

type hexSink struct {
	out    io.Writer
	color  bool
	offset int64
}

func (s *hexSink) Drain(buf *bytebuf.Buffer) error {
	for buf.Len() >= bytesPerLine {
		line, err := buf.Slice(0, bytesPerLine)
		if err != nil {
			return err
		}
		if err := s.line(line); err != nil {
			return err
		}
		if err := buf.Advance(bytesPerLine); err != nil {
			return err
		}
	}

	return nil
}

func (s *hexSink) Flush(buf *bytebuf.Buffer) error {
	if err := s.Drain(buf); err != nil {
		return err
	}
	if buf.Len() == 0 {
		return nil
	}
	if err := s.line(buf.Bytes()); err != nil {
		return err
	}

	return buf.Advance(buf.Len())
}

func (s *hexSink) line(p []byte) error {
	const dim, reset = "\x1b[2m", "\x1b[0m"

	var sb []byte
	if s.color {
		sb = append(sb, dim...)
	}
	sb = append(sb, fmt.Sprintf("%08x  ", s.offset)...)
	if s.color {
		sb = append(sb, reset...)
	}

	for i := 0; i < bytesPerLine; i++ {
		if i < len(p) {
			sb = append(sb, fmt.Sprintf("%02x ", p[i])...)
		} else {
			sb = append(sb, "   "...)
		}
		if i == bytesPerLine/2-1 {
			sb = append(sb, ' ')
		}
	}

	sb = append(sb, ' ', '|')
	for _, c := range p {
		if c < 0x20 || c > 0x7e {
			c = '.'
		}
		sb = append(sb, c)
	}
	sb = append(sb, '|', '\n')

	s.offset += int64(len(p))
	_, err := s.out.Write(sb)

	return err
}
