// Package allocator provides vector.Allocator implementations. Backends
// serve storage from mmap, size-bucketed pools or a chunked arena; decorators
// enforce a byte limit, inject failures or export metrics.
package allocator

import (
	"flag"
	"fmt"

	"github.com/c2h5oh/datasize"
	"github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/pavanmanishd/vector"
)

// Backend kinds accepted by Config.Kind.
const (
	KindHeap = "heap"
	KindMmap = "mmap"
	KindPool = "pool"
)

// Config selects and tunes the allocator built by New.
type Config struct {
	// Kind is one of heap, mmap or pool. Empty means heap.
	Kind string `yaml:"kind"`
	// Limit caps outstanding bytes. Zero disables the cap.
	Limit datasize.ByteSize `yaml:"limit"`
	Pool  PoolConfig        `yaml:"pool"`
}

// PoolConfig tunes the bucket sizes of the pool backend.
type PoolConfig struct {
	MinSize datasize.ByteSize `yaml:"min_size"`
	MaxSize datasize.ByteSize `yaml:"max_size"`
	Factor  float64           `yaml:"factor"`
}

// RegisterFlags registers flags with the "allocator." prefix.
func (cfg *Config) RegisterFlags(f *flag.FlagSet) {
	cfg.RegisterFlagsWithPrefix("allocator.", f)
}

// RegisterFlagsWithPrefix registers flags with the given prefix.
func (cfg *Config) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.StringVar(&cfg.Kind, prefix+"kind", KindHeap, "Storage backend for vectors: heap, mmap or pool.")
	f.TextVar(&cfg.Limit, prefix+"limit", datasize.ByteSize(0), "Maximum bytes outstanding through the allocator. 0 means unlimited.")
	cfg.Pool.RegisterFlagsWithPrefix(prefix+"pool.", f)
}

// RegisterFlagsWithPrefix registers flags with the given prefix.
func (cfg *PoolConfig) RegisterFlagsWithPrefix(prefix string, f *flag.FlagSet) {
	f.TextVar(&cfg.MinSize, prefix+"min-size", datasize.ByteSize(256), "Size of the smallest pool bucket.")
	f.TextVar(&cfg.MaxSize, prefix+"max-size", 16*datasize.MB, "Size of the largest pool bucket. Larger requests bypass the pool.")
	f.Float64Var(&cfg.Factor, prefix+"factor", 2, "Growth factor between pool bucket sizes.")
}

// Validate checks the config for consistency.
func (cfg *Config) Validate() error {
	switch cfg.Kind {
	case "", KindHeap, KindMmap:
		return nil
	case KindPool:
		return cfg.Pool.Validate()
	default:
		return fmt.Errorf("unsupported allocator kind %q", cfg.Kind)
	}
}

// Validate checks the pool config for consistency.
func (cfg *PoolConfig) Validate() error {
	if cfg.MinSize == 0 {
		return fmt.Errorf("pool min size must be greater than 0")
	}
	if cfg.MaxSize < cfg.MinSize {
		return fmt.Errorf("pool max size %s is below min size %s", cfg.MaxSize.HumanReadable(), cfg.MinSize.HumanReadable())
	}
	if cfg.Factor <= 1 {
		return fmt.Errorf("pool factor must be greater than 1, got %v", cfg.Factor)
	}
	return nil
}

// New builds the allocator described by cfg: the chosen backend, wrapped in a
// Limit when cfg.Limit is set, wrapped in an Instrumented allocator that
// registers its metrics with r and logs to logger.
func New(cfg Config, r prometheus.Registerer, logger log.Logger) (vector.Allocator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var a vector.Allocator
	switch cfg.Kind {
	case KindMmap:
		a = NewMmap()
	case KindPool:
		a = NewPool(int(cfg.Pool.MinSize.Bytes()), int(cfg.Pool.MaxSize.Bytes()), cfg.Pool.Factor)
	default:
		a = vector.HeapAllocator{}
	}
	if cfg.Limit > 0 {
		a = NewLimit(a, int64(cfg.Limit.Bytes()))
	}
	return NewInstrumented(a, r, logger), nil
}
