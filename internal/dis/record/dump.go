package record

import (
	"fmt"
	"io"
	"strings"
)

// Dumper writes a human-readable, debug-only rendering of a record.
// The output is not a wire or interchange format.
type Dumper struct {
	Indent string
}

// Dump renders r with a two-space indent.
func Dump(w io.Writer, r Record) error {
	return Dumper{Indent: "  "}.Dump(w, r)
}

func (dd Dumper) Dump(w io.Writer, r Record) error {
	if isNil(r) {
		return ErrNilRecord
	}
	d := &dumper{w: w, indent: dd.Indent}
	d.linef(0, "%s (%d bytes)", Name(r), Size(r))
	dumpFields(d, r, 1)
	return d.err
}

type dumper struct {
	w      io.Writer
	indent string
	err    error
}

func (d *dumper) linef(depth int, format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, "%s"+format+"\n", append([]any{strings.Repeat(d.indent, depth)}, args...)...)
}

func dumpFields(d *dumper, r Record, depth int) {
	for _, f := range r.Fields() {
		f.dump(d, depth)
	}
}

// FieldInfo describes one top-level field of a record's current layout.
type FieldInfo struct {
	Name   string
	Kind   string
	Offset int
	Size   int
}

// Layout lists the top-level fields of r with their byte offsets.
func Layout(r Record) []FieldInfo {
	if isNil(r) {
		return nil
	}
	fields := r.Fields()
	out := make([]FieldInfo, 0, len(fields))
	offset := 0
	for _, f := range fields {
		n := f.size()
		out = append(out, FieldInfo{Name: f.Name(), Kind: f.Kind(), Offset: offset, Size: n})
		offset += n
	}
	return out
}
