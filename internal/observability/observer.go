package observability

import (
	"github.com/danmuck/discodec/internal/dis/record"
	"github.com/rs/zerolog"
)

// CodecObserver feeds codec diagnostics into metrics and debug logs.
type CodecObserver struct {
	metrics *Metrics
	logger  zerolog.Logger
}

var _ record.Observer = (*CodecObserver)(nil)

// NewCodecObserver returns an observer; a nil metrics disables counting.
func NewCodecObserver(m *Metrics, logger zerolog.Logger) *CodecObserver {
	return &CodecObserver{metrics: m, logger: logger}
}

func (o *CodecObserver) Encoded(name string, n int) {
	if o.metrics != nil {
		o.metrics.RecordSuccess(string(record.OpEncode), name, n)
	}
	o.logger.Debug().Str("record", name).Int("bytes", n).Msg("encoded")
}

func (o *CodecObserver) Decoded(name string, n int) {
	if o.metrics != nil {
		o.metrics.RecordSuccess(string(record.OpDecode), name, n)
	}
	o.logger.Debug().Str("record", name).Int("bytes", n).Msg("decoded")
}

func (o *CodecObserver) Failed(op record.Op, name string, err error) {
	if o.metrics != nil {
		o.metrics.RecordFailure(string(op), name)
	}
	o.logger.Debug().Str("op", string(op)).Str("record", name).Err(err).Msg("codec failure")
}
