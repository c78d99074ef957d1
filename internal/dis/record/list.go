package record

import (
	"fmt"
	"math"

	"github.com/danmuck/discodec/internal/dis/wire"
)

// Elem constrains list element types: T is stored by value, *T is the Record.
type Elem[T any] interface {
	*T
	Record
}

// counter is the fixed-width unsigned count that precedes a list.
type counter int

const (
	count8  counter = 1
	count16 counter = 2
	count32 counter = 4
)

func (c counter) max() uint64 {
	return 1<<(8*uint(c)) - 1
}

func (c counter) kind() string {
	return fmt.Sprintf("count%d", 8*int(c))
}

func (c counter) put(w *wire.Writer, n int) {
	switch c {
	case count8:
		w.PutUint8(uint8(n))
	case count16:
		w.PutUint16(uint16(n))
	default:
		w.PutUint32(uint32(n))
	}
}

// maxDecodeCount bounds a decoded count to what an int can index.
var maxDecodeCount uint64 = math.MaxInt

func (c counter) get(r *wire.Reader, name string) (int, error) {
	var v uint64
	switch c {
	case count8:
		n, err := r.Uint8()
		if err != nil {
			return 0, err
		}
		v = uint64(n)
	case count16:
		n, err := r.Uint16()
		if err != nil {
			return 0, err
		}
		v = uint64(n)
	default:
		n, err := r.Uint32()
		if err != nil {
			return 0, err
		}
		v = uint64(n)
	}
	if v > maxDecodeCount {
		return 0, &CountOverflowError{Field: name, Len: v, Max: maxDecodeCount}
	}
	return int(v), nil
}

func (c counter) check(name string, n int) error {
	if uint64(n) > c.max() {
		return &CountOverflowError{Field: name, Len: uint64(n), Max: c.max()}
	}
	return nil
}

// elements is the shared element-run logic behind both list layouts.
type elements[T any, P Elem[T]] struct {
	items *[]T
}

func (e elements[T, P]) size() int {
	n := 0
	for i := range *e.items {
		n += Size(P(&(*e.items)[i]))
	}
	return n
}

func (e elements[T, P]) encode(w *wire.Writer) error {
	for i := range *e.items {
		if err := encodeFields(w, P(&(*e.items)[i])); err != nil {
			return prefix(fmt.Sprintf("[%d]", i), err)
		}
	}
	return nil
}

// decode materializes exactly n zero-valued elements and replaces the list.
func (e elements[T, P]) decode(r *wire.Reader, n int) error {
	out := make([]T, 0, min(n, r.Remaining()))
	for i := 0; i < n; i++ {
		var v T
		if err := decodeFields(r, P(&v)); err != nil {
			return prefix(fmt.Sprintf("[%d]", i), err)
		}
		out = append(out, v)
	}
	*e.items = out
	return nil
}

func (e elements[T, P]) equal(o elements[T, P]) bool {
	a, b := *e.items, *o.items
	if len(a) != len(b) {
		return false
	}
	eq := true
	for i := range a {
		if !Equal(P(&a[i]), P(&b[i])) {
			eq = false
		}
	}
	return eq
}

func (e elements[T, P]) mix(acc uint64) uint64 {
	for i := range *e.items {
		acc = mixStep(acc, Hash(P(&(*e.items)[i])))
	}
	return acc
}

func (e elements[T, P]) save() func() {
	items, saved := e.items, *e.items
	return func() { *items = saved }
}

func (e elements[T, P]) dump(d *dumper, depth int) {
	for i := range *e.items {
		p := P(&(*e.items)[i])
		d.linef(depth, "[%d]: %s", i, Name(p))
		dumpFields(d, p, depth+1)
	}
}

type listField[T any, P Elem[T]] struct {
	name  string
	count counter
	elems elements[T, P]
}

// List8 binds a list preceded directly by a one-byte element count.
func List8[T any, P Elem[T]](name string, items *[]T) Field {
	return &listField[T, P]{name: name, count: count8, elems: elements[T, P]{items}}
}

// List16 binds a list preceded directly by a two-byte element count.
func List16[T any, P Elem[T]](name string, items *[]T) Field {
	return &listField[T, P]{name: name, count: count16, elems: elements[T, P]{items}}
}

// List32 binds a list preceded directly by a four-byte element count.
func List32[T any, P Elem[T]](name string, items *[]T) Field {
	return &listField[T, P]{name: name, count: count32, elems: elements[T, P]{items}}
}

func (f *listField[T, P]) Name() string { return f.name }
func (f *listField[T, P]) Kind() string { return "list/" + f.count.kind() }
func (f *listField[T, P]) size() int    { return int(f.count) + f.elems.size() }

// encode transmits len(list) as the count; there is no stored count.
func (f *listField[T, P]) encode(w *wire.Writer) error {
	n := len(*f.elems.items)
	if err := f.count.check(f.name, n); err != nil {
		return err
	}
	f.count.put(w, n)
	return f.elems.encode(w)
}

func (f *listField[T, P]) decode(r *wire.Reader) error {
	n, err := f.count.get(r, f.name)
	if err != nil {
		return err
	}
	return f.elems.decode(r, n)
}

func (f *listField[T, P]) equal(other Field) bool {
	o, ok := other.(*listField[T, P])
	return ok && f.count == o.count && f.elems.equal(o.elems)
}

func (f *listField[T, P]) mix(acc uint64) uint64 {
	acc = mixStep(acc, uint64(len(*f.elems.items)))
	return f.elems.mix(acc)
}

func (f *listField[T, P]) save() func() { return f.elems.save() }

func (f *listField[T, P]) dump(d *dumper, depth int) {
	d.linef(depth, "%s: (%d)", f.name, len(*f.elems.items))
	f.elems.dump(d, depth+1)
}

// splitState carries a decoded count from its count field to the element run
// of the same list within one Fields() binding.
type splitState[T any, P Elem[T]] struct {
	countName string
	name      string
	count     counter
	elems     elements[T, P]
	pending   int
	seen      bool
}

type splitCount[T any, P Elem[T]] struct{ s *splitState[T, P] }

type splitItems[T any, P Elem[T]] struct{ s *splitState[T, P] }

func split[T any, P Elem[T]](c counter, countName, name string, items *[]T) (Field, Field) {
	s := &splitState[T, P]{countName: countName, name: name, count: c, elems: elements[T, P]{items}}
	return &splitCount[T, P]{s}, &splitItems[T, P]{s}
}

// SplitList8 binds a list whose one-byte count sits at a different layout
// position than its elements. Place the count field before the list field.
func SplitList8[T any, P Elem[T]](countName, name string, items *[]T) (count, list Field) {
	return split[T, P](count8, countName, name, items)
}

// SplitList16 is SplitList8 with a two-byte count.
func SplitList16[T any, P Elem[T]](countName, name string, items *[]T) (count, list Field) {
	return split[T, P](count16, countName, name, items)
}

// SplitList32 is SplitList8 with a four-byte count.
func SplitList32[T any, P Elem[T]](countName, name string, items *[]T) (count, list Field) {
	return split[T, P](count32, countName, name, items)
}

func (f *splitCount[T, P]) Name() string { return f.s.countName }
func (f *splitCount[T, P]) Kind() string { return f.s.count.kind() }
func (f *splitCount[T, P]) size() int    { return int(f.s.count) }

func (f *splitCount[T, P]) encode(w *wire.Writer) error {
	n := len(*f.s.elems.items)
	if err := f.s.count.check(f.s.name, n); err != nil {
		return err
	}
	f.s.count.put(w, n)
	return nil
}

func (f *splitCount[T, P]) decode(r *wire.Reader) error {
	n, err := f.s.count.get(r, f.s.name)
	if err != nil {
		return err
	}
	f.s.pending, f.s.seen = n, true
	return nil
}

func (f *splitCount[T, P]) equal(other Field) bool {
	o, ok := other.(*splitCount[T, P])
	return ok && len(*f.s.elems.items) == len(*o.s.elems.items)
}

func (f *splitCount[T, P]) mix(acc uint64) uint64 {
	return mixStep(acc, uint64(len(*f.s.elems.items)))
}

func (f *splitCount[T, P]) save() func() { return func() {} }

func (f *splitCount[T, P]) dump(d *dumper, depth int) {
	d.linef(depth, "%s: %d", f.s.countName, len(*f.s.elems.items))
}

func (f *splitItems[T, P]) Name() string { return f.s.name }
func (f *splitItems[T, P]) Kind() string { return "list" }
func (f *splitItems[T, P]) size() int    { return f.s.elems.size() }

func (f *splitItems[T, P]) encode(w *wire.Writer) error {
	return f.s.elems.encode(w)
}

func (f *splitItems[T, P]) decode(r *wire.Reader) error {
	if !f.s.seen {
		return ErrCountMissing
	}
	f.s.seen = false
	return f.s.elems.decode(r, f.s.pending)
}

func (f *splitItems[T, P]) equal(other Field) bool {
	o, ok := other.(*splitItems[T, P])
	return ok && f.s.elems.equal(o.s.elems)
}

func (f *splitItems[T, P]) mix(acc uint64) uint64 { return f.s.elems.mix(acc) }

func (f *splitItems[T, P]) save() func() { return f.s.elems.save() }

func (f *splitItems[T, P]) dump(d *dumper, depth int) {
	d.linef(depth, "%s: (%d)", f.s.name, len(*f.s.elems.items))
	f.s.elems.dump(d, depth+1)
}
