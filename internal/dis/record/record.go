package record

import (
	"errors"
	"reflect"

	"github.com/danmuck/discodec/internal/dis/wire"
)

// Record is a fixed-layout wire record.
//
// Fields returns the layout in wire order, bound to the receiver's storage.
// It must be called on a pointer so decode can write through the bindings.
type Record interface {
	Fields() []Field
}

// Field is one bound entry of a record layout. Implementations live in this
// package; records build them with the constructors in fields.go and list.go.
type Field interface {
	Name() string
	Kind() string

	size() int
	encode(w *wire.Writer) error
	decode(r *wire.Reader) error
	equal(other Field) bool
	mix(acc uint64) uint64
	save() func()
	dump(d *dumper, depth int)
}

// Name returns the concrete type name of r, without package or pointer.
func Name(r Record) string {
	if r == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(r)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// isNil reports whether r is a nil interface or wraps a nil pointer.
func isNil(r Record) bool {
	if r == nil {
		return true
	}
	v := reflect.ValueOf(r)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Size returns the encoded width of r in bytes; a nil record has size 0.
func Size(r Record) int {
	if isNil(r) {
		return 0
	}
	n := 0
	for _, f := range r.Fields() {
		n += f.size()
	}
	return n
}

// Equal reports whether a and b have the same concrete type and every field
// compares equal. All fields are evaluated. Two nil records are equal.
func Equal(a, b Record) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	fa, fb := a.Fields(), b.Fields()
	if len(fa) != len(fb) {
		return false
	}
	eq := true
	for i := range fa {
		if !fa[i].equal(fb[i]) {
			eq = false
		}
	}
	return eq
}

// Hash folds every field of r, in wire order, into one value.
// Equal records always hash equal; a nil record hashes to 0.
func Hash(r Record) uint64 {
	var acc uint64
	if isNil(r) {
		return acc
	}
	for _, f := range r.Fields() {
		acc = f.mix(acc)
	}
	return acc
}

func encodeFields(w *wire.Writer, r Record) error {
	for _, f := range r.Fields() {
		if err := f.encode(w); err != nil {
			return prefix(f.Name(), err)
		}
	}
	return nil
}

func decodeFields(rd *wire.Reader, r Record) error {
	for _, f := range r.Fields() {
		if err := f.decode(rd); err != nil {
			return prefix(f.Name(), err)
		}
	}
	return nil
}

// snapshot captures the current contents of r; calling the result restores them.
func snapshot(r Record) func() {
	fields := r.Fields()
	restores := make([]func(), len(fields))
	for i, f := range fields {
		restores[i] = f.save()
	}
	return func() {
		for _, restore := range restores {
			restore()
		}
	}
}

// finish stamps the record name on a failure and labels any underrun with
// the full field path.
func finish(r Record, err error) error {
	if err == nil {
		return nil
	}
	name := Name(r)
	var fe *FieldError
	if !errors.As(err, &fe) {
		return &FieldError{Record: name, Err: err}
	}
	out := &FieldError{Record: name, Path: fe.Path, Err: fe.Err}
	var ue *wire.UnderrunError
	if errors.As(out.Err, &ue) && ue.Field == "" {
		ue.Field = joinPath(name, out.Path)
	}
	return out
}
