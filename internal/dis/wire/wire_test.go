package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/danmuck/discodec/internal/testutil/testlog"
)

func TestWriterBigEndianLayout(t *testing.T) {
	testlog.Start(t)
	w := NewWriter(0)
	w.PutUint8(0x01)
	w.PutUint16(0x0203)
	w.PutUint32(0x04050607)
	w.PutInt16(-2)
	w.PutFloat32(1.0)

	want := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0xff, 0xfe, 0x3f, 0x80, 0x00, 0x00}
	if !bytes.Equal(w.Bytes(), want) {
		t.Fatalf("layout mismatch: got=% x want=% x", w.Bytes(), want)
	}
	if w.Len() != len(want) {
		t.Fatalf("len mismatch: got=%d want=%d", w.Len(), len(want))
	}
}

func TestReaderRoundTrip(t *testing.T) {
	testlog.Start(t)
	w := NewWriter(32)
	w.PutUint8(200)
	w.PutUint16(65000)
	w.PutUint32(4000000000)
	w.PutUint64(1 << 60)
	w.PutInt8(-5)
	w.PutInt32(-70000)
	w.PutFloat64(math.Pi)
	w.PutBytes([]byte{0xaa, 0xbb})

	r := NewReader(w.Bytes())
	if v, err := r.Uint8(); err != nil || v != 200 {
		t.Fatalf("uint8: v=%d err=%v", v, err)
	}
	if v, err := r.Uint16(); err != nil || v != 65000 {
		t.Fatalf("uint16: v=%d err=%v", v, err)
	}
	if v, err := r.Uint32(); err != nil || v != 4000000000 {
		t.Fatalf("uint32: v=%d err=%v", v, err)
	}
	if v, err := r.Uint64(); err != nil || v != 1<<60 {
		t.Fatalf("uint64: v=%d err=%v", v, err)
	}
	if v, err := r.Int8(); err != nil || v != -5 {
		t.Fatalf("int8: v=%d err=%v", v, err)
	}
	if v, err := r.Int32(); err != nil || v != -70000 {
		t.Fatalf("int32: v=%d err=%v", v, err)
	}
	if v, err := r.Float64(); err != nil || v != math.Pi {
		t.Fatalf("float64: v=%v err=%v", v, err)
	}
	b := make([]byte, 2)
	if err := r.ReadInto(b); err != nil || !bytes.Equal(b, []byte{0xaa, 0xbb}) {
		t.Fatalf("octets: b=% x", b)
	}
	if r.Remaining() != 0 {
		t.Fatalf("expected reader drained, remaining=%d", r.Remaining())
	}
}

func TestReaderUnderrunIsDeterministic(t *testing.T) {
	testlog.Start(t)
	r := NewReader([]byte{0x00, 0x01, 0x02})
	if _, err := r.Uint16(); err != nil {
		t.Fatalf("uint16: %v", err)
	}
	_, err := r.Uint32()
	if !errors.Is(err, ErrUnderrun) {
		t.Fatalf("expected ErrUnderrun, got %v", err)
	}
	var ue *UnderrunError
	if !errors.As(err, &ue) {
		t.Fatalf("expected *UnderrunError, got %T", err)
	}
	if ue.Offset != 2 || ue.Need != 4 || ue.Have != 1 {
		t.Fatalf("unexpected underrun detail: %+v", ue)
	}
	if r.Offset() != 2 {
		t.Fatalf("failed read advanced offset to %d", r.Offset())
	}
}

func TestReadIntoCopies(t *testing.T) {
	testlog.Start(t)
	src := []byte{1, 2, 3, 4}
	r := NewReader(src)
	var dst [4]byte
	if err := r.ReadInto(dst[:]); err != nil {
		t.Fatalf("read into: %v", err)
	}
	src[0] = 9
	if dst[0] != 1 {
		t.Fatalf("ReadInto aliased the source buffer")
	}
	if err := r.ReadInto(dst[:1]); !errors.Is(err, ErrUnderrun) {
		t.Fatalf("expected ErrUnderrun on empty reader, got %v", err)
	}
}
