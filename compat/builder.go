package compat

import (
	"fmt"

	"github.com/varkala/alog"
)

// Builder provides a flexible way to create configured logger adapters for
// gnet and fasthttp. It resolves tag and default priority from an alog
// configuration, typically loaded from the application's config file.
type Builder struct {
	cfg *alog.Config
	err error
}

// NewBuilder creates a new adapter builder
func NewBuilder() *Builder {
	return &Builder{}
}

// WithConfig provides the configuration used for the adapters
// If not called, alog defaults are used
func (b *Builder) WithConfig(cfg *alog.Config) *Builder {
	if cfg == nil {
		b.err = fmt.Errorf("alog/compat: provided config cannot be nil")
		return b
	}
	b.cfg = cfg
	return b
}

// resolve returns the tag and priority the adapters should use
func (b *Builder) resolve() (string, alog.Priority, error) {
	if b.err != nil {
		return "", 0, b.err
	}

	cfg := b.cfg
	if cfg == nil {
		cfg = alog.DefaultConfig()
	}

	prio, err := alog.ParsePriority(cfg.Priority)
	if err != nil {
		return "", 0, err
	}
	return cfg.Tag, prio, nil
}

// BuildGnet creates a gnet-compatible adapter
func (b *Builder) BuildGnet(opts ...GnetOption) (*GnetAdapter, error) {
	tag, _, err := b.resolve()
	if err != nil {
		return nil, err
	}

	opts = append([]GnetOption{WithGnetTag(tag)}, opts...)
	return NewGnetAdapter(opts...), nil
}

// BuildFastHTTP creates a fasthttp-compatible adapter
func (b *Builder) BuildFastHTTP(opts ...FastHTTPOption) (*FastHTTPAdapter, error) {
	tag, prio, err := b.resolve()
	if err != nil {
		return nil, err
	}

	opts = append([]FastHTTPOption{WithFastHTTPTag(tag), WithDefaultPriority(prio)}, opts...)
	return NewFastHTTPAdapter(opts...), nil
}
