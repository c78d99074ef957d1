package record

import (
	"github.com/danmuck/discodec/internal/dis/wire"
)

// Op names a codec operation reported to an Observer.
type Op string

const (
	OpEncode Op = "encode"
	OpDecode Op = "decode"
)

// Observer receives diagnostics about codec calls. It is a side channel:
// the error returned by the codec is the only authoritative failure signal.
type Observer interface {
	Encoded(record string, n int)
	Decoded(record string, n int)
	Failed(op Op, record string, err error)
}

// Option configures a Codec.
type Option func(*Codec)

func WithObserver(o Observer) Option {
	return func(c *Codec) {
		c.observer = o
	}
}

// WithTrailingBytes allows Unmarshal to ignore bytes after the record.
func WithTrailingBytes(allow bool) Option {
	return func(c *Codec) {
		c.allowTrailing = allow
	}
}

// Codec runs encode/decode over any Record. The zero value is ready to use.
// A Codec holds no mutable state and is safe to share between goroutines.
type Codec struct {
	observer      Observer
	allowTrailing bool
}

func New(opts ...Option) *Codec {
	c := &Codec{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var defaultCodec = &Codec{}

// Marshal encodes r with the default codec.
func Marshal(r Record) ([]byte, error) { return defaultCodec.Marshal(r) }

// Encode appends r to w with the default codec.
func Encode(w *wire.Writer, r Record) error { return defaultCodec.Encode(w, r) }

// Unmarshal decodes data into r with the default codec.
func Unmarshal(data []byte, r Record) error { return defaultCodec.Unmarshal(data, r) }

// Decode reads r from rd with the default codec.
func Decode(rd *wire.Reader, r Record) error { return defaultCodec.Decode(rd, r) }

func (c *Codec) Marshal(r Record) ([]byte, error) {
	if isNil(r) {
		return nil, c.fail(OpEncode, r, ErrNilRecord)
	}
	w := wire.NewWriter(Size(r))
	if err := c.Encode(w, r); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// Encode appends r to w. On failure w is left at its length before the call.
func (c *Codec) Encode(w *wire.Writer, r Record) error {
	if isNil(r) {
		return c.fail(OpEncode, r, ErrNilRecord)
	}
	if w == nil {
		return c.fail(OpEncode, r, wire.ErrNilSink)
	}
	start := w.Len()
	if err := encodeFields(w, r); err != nil {
		w.Truncate(start)
		return c.fail(OpEncode, r, err)
	}
	c.encoded(r, w.Len()-start)
	return nil
}

// Unmarshal decodes exactly one record from data into r. On failure r keeps
// the contents it had before the call.
func (c *Codec) Unmarshal(data []byte, r Record) error {
	if isNil(r) {
		return c.fail(OpDecode, r, ErrNilRecord)
	}
	restore := snapshot(r)
	rd := wire.NewReader(data)
	if err := decodeFields(rd, r); err != nil {
		restore()
		return c.fail(OpDecode, r, err)
	}
	if !c.allowTrailing && rd.Remaining() != 0 {
		restore()
		return c.fail(OpDecode, r, ErrTrailingBytes)
	}
	c.decoded(r, rd.Offset())
	return nil
}

// Decode reads one record from rd into r, leaving rd positioned after it.
// On failure r keeps its prior contents and rd's position is unspecified.
func (c *Codec) Decode(rd *wire.Reader, r Record) error {
	if isNil(r) {
		return c.fail(OpDecode, r, ErrNilRecord)
	}
	if rd == nil {
		return c.fail(OpDecode, r, wire.ErrNilSource)
	}
	restore := snapshot(r)
	start := rd.Offset()
	if err := decodeFields(rd, r); err != nil {
		restore()
		return c.fail(OpDecode, r, err)
	}
	c.decoded(r, rd.Offset()-start)
	return nil
}

func (c *Codec) fail(op Op, r Record, err error) error {
	err = finish(r, err)
	if c.observer != nil {
		c.observer.Failed(op, Name(r), err)
	}
	return err
}

func (c *Codec) encoded(r Record, n int) {
	if c.observer != nil {
		c.observer.Encoded(Name(r), n)
	}
}

func (c *Codec) decoded(r Record, n int) {
	if c.observer != nil {
		c.observer.Decoded(Name(r), n)
	}
}
