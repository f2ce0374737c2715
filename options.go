package tinytindb

import (
	"github.com/kumarUjjawal/tinytindb/codec"
	"github.com/kumarUjjawal/tinytindb/pagedir"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

type options struct {
	pageDir pagedir.PageDir
	codec   codec.Codec
	logger  *zap.Logger
	metrics *Metrics
}

type Option func(*options)

func defaultOptions() *options {
	return &options{
		pageDir: pagedir.NewArray(),
		codec:   codec.NewCodecImpl(),
		logger:  zap.NewNop(),
		metrics: NewMetrics(nil),
	}
}

func WithPageDir(dir pagedir.PageDir) Option {
	return func(o *options) {
		o.pageDir = dir
	}
}

func WithCodec(codec codec.Codec) Option {
	return func(o *options) {
		o.codec = codec
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func WithMetrics(metrics *Metrics) Option {
	return func(o *options) {
		o.metrics = metrics
	}
}

// WithRegisterer is a shortcut for WithMetrics(NewMetrics(reg))
func WithRegisterer(reg prometheus.Registerer) Option {
	return func(o *options) {
		o.metrics = NewMetrics(reg)
	}
}
