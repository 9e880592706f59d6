// Package workload provides ready-made operations to feed the measurer.
package workload

import (
	"context"
	"sort"
	"time"

	"github.com/dlshle/minbench/errors"
)

// Workload is one repeatable operation. Run may be called any number of times
// on the same instance; Close releases whatever Run needed.
type Workload interface {
	Name() string
	Run() error
	Close() error
}

type Config struct {
	Sleep     time.Duration `mapstructure:"sleep"`
	SqrtUnit  int           `mapstructure:"sqrt_unit"`
	BadgerDir string        `mapstructure:"badger_dir"`
	RedisAddr string        `mapstructure:"redis_addr"`
	RedisDB   int           `mapstructure:"redis_db"`
}

func DefaultConfig() Config {
	return Config{
		Sleep:     10 * time.Millisecond,
		SqrtUnit:  defaultSqrtUnit,
		RedisAddr: "localhost:6379",
	}
}

type factory func(ctx context.Context, cfg Config) (Workload, error)

var registry = map[string]factory{
	sqrtName:      newSqrtWorkload,
	sleepName:     newSleepWorkload,
	badgerPutName: newBadgerPutWorkload,
	redisPingName: newRedisPingWorkload,
}

func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func New(ctx context.Context, name string, cfg Config) (Workload, error) {
	create, ok := registry[name]
	if !ok {
		return nil, errors.Errorf("unknown workload %q", name)
	}
	return create(ctx, cfg)
}

// funcWorkload adapts a plain function that needs no teardown.
type funcWorkload struct {
	name string
	run  func() error
}

func (w funcWorkload) Name() string {
	return w.name
}

func (w funcWorkload) Run() error {
	return w.run()
}

func (w funcWorkload) Close() error {
	return nil
}
