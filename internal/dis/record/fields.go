package record

import (
	"bytes"
	"math"

	"github.com/danmuck/discodec/internal/dis/wire"
)

type scalarField[T comparable] struct {
	name  string
	kind  string
	width int
	p     *T
	put   func(*wire.Writer, T)
	get   func(*wire.Reader) (T, error)
	bits  func(T) uint64
}

func (f *scalarField[T]) Name() string { return f.name }
func (f *scalarField[T]) Kind() string { return f.kind }
func (f *scalarField[T]) size() int    { return f.width }

func (f *scalarField[T]) encode(w *wire.Writer) error {
	f.put(w, *f.p)
	return nil
}

func (f *scalarField[T]) decode(r *wire.Reader) error {
	v, err := f.get(r)
	if err != nil {
		return err
	}
	*f.p = v
	return nil
}

// equal compares bit patterns so float fields stay reflexive for NaN.
func (f *scalarField[T]) equal(other Field) bool {
	o, ok := other.(*scalarField[T])
	return ok && f.kind == o.kind && f.bits(*f.p) == f.bits(*o.p)
}

func (f *scalarField[T]) mix(acc uint64) uint64 {
	return mixStep(acc, f.bits(*f.p))
}

func (f *scalarField[T]) save() func() {
	p, v := f.p, *f.p
	return func() { *p = v }
}

func (f *scalarField[T]) dump(d *dumper, depth int) {
	d.linef(depth, "%s: %v", f.name, *f.p)
}

func Uint8(name string, p *uint8) Field {
	return &scalarField[uint8]{name, "uint8", 1, p, (*wire.Writer).PutUint8, (*wire.Reader).Uint8, func(v uint8) uint64 { return uint64(v) }}
}

func Uint16(name string, p *uint16) Field {
	return &scalarField[uint16]{name, "uint16", 2, p, (*wire.Writer).PutUint16, (*wire.Reader).Uint16, func(v uint16) uint64 { return uint64(v) }}
}

func Uint32(name string, p *uint32) Field {
	return &scalarField[uint32]{name, "uint32", 4, p, (*wire.Writer).PutUint32, (*wire.Reader).Uint32, func(v uint32) uint64 { return uint64(v) }}
}

func Uint64(name string, p *uint64) Field {
	return &scalarField[uint64]{name, "uint64", 8, p, (*wire.Writer).PutUint64, (*wire.Reader).Uint64, func(v uint64) uint64 { return v }}
}

func Int8(name string, p *int8) Field {
	return &scalarField[int8]{name, "int8", 1, p, (*wire.Writer).PutInt8, (*wire.Reader).Int8, func(v int8) uint64 { return uint64(uint8(v)) }}
}

func Int16(name string, p *int16) Field {
	return &scalarField[int16]{name, "int16", 2, p, (*wire.Writer).PutInt16, (*wire.Reader).Int16, func(v int16) uint64 { return uint64(uint16(v)) }}
}

func Int32(name string, p *int32) Field {
	return &scalarField[int32]{name, "int32", 4, p, (*wire.Writer).PutInt32, (*wire.Reader).Int32, func(v int32) uint64 { return uint64(uint32(v)) }}
}

func Float32(name string, p *float32) Field {
	return &scalarField[float32]{name, "float32", 4, p, (*wire.Writer).PutFloat32, (*wire.Reader).Float32, func(v float32) uint64 { return uint64(math.Float32bits(v)) }}
}

func Float64(name string, p *float64) Field {
	return &scalarField[float64]{name, "float64", 8, p, (*wire.Writer).PutFloat64, (*wire.Reader).Float64, math.Float64bits}
}

// Padding fields behave exactly like the unsigned scalar of the same width.

func Pad8(name string, p *uint8) Field {
	f := Uint8(name, p).(*scalarField[uint8])
	f.kind = "pad8"
	return f
}

func Pad16(name string, p *uint16) Field {
	f := Uint16(name, p).(*scalarField[uint16])
	f.kind = "pad16"
	return f
}

func Pad32(name string, p *uint32) Field {
	f := Uint32(name, p).(*scalarField[uint32])
	f.kind = "pad32"
	return f
}

type octetsField struct {
	name string
	b    []byte
}

// Octets binds a fixed-width byte run, typically an array slice such as
// r.OtherParameters[:]. The width is len(b).
func Octets(name string, b []byte) Field {
	return &octetsField{name: name, b: b}
}

func (f *octetsField) Name() string { return f.name }
func (f *octetsField) Kind() string { return "octets" }
func (f *octetsField) size() int    { return len(f.b) }

func (f *octetsField) encode(w *wire.Writer) error {
	w.PutBytes(f.b)
	return nil
}

func (f *octetsField) decode(r *wire.Reader) error {
	return r.ReadInto(f.b)
}

func (f *octetsField) equal(other Field) bool {
	o, ok := other.(*octetsField)
	return ok && bytes.Equal(f.b, o.b)
}

func (f *octetsField) mix(acc uint64) uint64 {
	for _, b := range f.b {
		acc = mixStep(acc, uint64(b))
	}
	return acc
}

func (f *octetsField) save() func() {
	b := f.b
	saved := bytes.Clone(b)
	return func() { copy(b, saved) }
}

func (f *octetsField) dump(d *dumper, depth int) {
	d.linef(depth, "%s: [% x]", f.name, f.b)
}

type nestedField struct {
	name string
	rec  Record
}

// Nested binds a sub-record owned by the enclosing record.
func Nested(name string, rec Record) Field {
	return &nestedField{name: name, rec: rec}
}

func (f *nestedField) Name() string { return f.name }
func (f *nestedField) Kind() string { return Name(f.rec) }
func (f *nestedField) size() int    { return Size(f.rec) }

func (f *nestedField) encode(w *wire.Writer) error {
	return encodeFields(w, f.rec)
}

func (f *nestedField) decode(r *wire.Reader) error {
	return decodeFields(r, f.rec)
}

func (f *nestedField) equal(other Field) bool {
	o, ok := other.(*nestedField)
	return ok && Equal(f.rec, o.rec)
}

func (f *nestedField) mix(acc uint64) uint64 {
	return mixStep(acc, Hash(f.rec))
}

func (f *nestedField) save() func() {
	return snapshot(f.rec)
}

func (f *nestedField) dump(d *dumper, depth int) {
	d.linef(depth, "%s: %s", f.name, Name(f.rec))
	dumpFields(d, f.rec, depth+1)
}
