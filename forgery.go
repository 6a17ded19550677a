package forgery

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/rossipedia/Forgery/logger"
	"github.com/rossipedia/Forgery/schema"
)

// Config mapper config
type Config struct {
	// NamingStrategy table naming for types that declare no table name
	NamingStrategy schema.Namer
	// EnumSaveStrategy used by enum fields and types that declare none
	EnumSaveStrategy schema.EnumSaveStrategy
	// NowFunc the function to be used when creating a new timestamp
	NowFunc func() time.Time
	// Logger
	Logger logger.Interface
}

// Mapper maps the types it is asked for, building the metadata of each once
type Mapper struct {
	*Config
	cacheStore *sync.Map
}

// Default the mapper used by the package level helpers
var Default = New()

// New initialize a mapper
func New(opts ...Option) *Mapper {
	config := &Config{}
	for _, opt := range opts {
		opt(config)
	}

	if config.NamingStrategy == nil {
		config.NamingStrategy = schema.NamingStrategy{}
	}

	if config.Logger == nil {
		config.Logger = logger.Default
	}

	if config.NowFunc == nil {
		config.NowFunc = func() time.Time { return time.Now().Local() }
	}

	return &Mapper{Config: config, cacheStore: &sync.Map{}}
}

func (m *Mapper) defaults() schema.Defaults {
	return schema.Defaults{Namer: m.NamingStrategy, EnumSaveStrategy: m.EnumSaveStrategy}
}

type cacheEntry struct {
	once  sync.Once
	model interface{}
	err   error
}

// load returns the cached entry of typ, building it with build on first access.
// Concurrent first callers wait on the same build and observe its result.
// A panicking build is cached as an error wrapping ErrInvalidModel.
func (m *Mapper) load(typ reflect.Type, build func() (interface{}, error)) (interface{}, error) {
	v, _ := m.cacheStore.LoadOrStore(typ, &cacheEntry{})
	entry := v.(*cacheEntry)
	entry.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				entry.model, entry.err = nil, fmt.Errorf("%w: %v panicked: %v", ErrInvalidModel, typ, r)
				m.Logger.Error(context.Background(), "failed to build model: %v", entry.err)
			}
		}()
		entry.model, entry.err = build()
	})
	return entry.model, entry.err
}

func (m *Mapper) logError(ctx context.Context, msg string, err error) error {
	if err != nil {
		m.Logger.Error(ctx, msg+": %v", err)
	}
	return err
}
