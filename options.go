package model

import "time"

// Option mutates Config when constructing a Model.
type Option func(Config) Config

// WithParent attaches parent under the configured parent key.
func WithParent(parent any) Option {
	return func(cfg Config) Config {
		cfg.Parent = parent
		return cfg
	}
}

// WithOwner sets the value whose RuleRefiner / Initializer implementations
// supply the model hooks.
func WithOwner(owner any) Option {
	return func(cfg Config) Config {
		cfg.Owner = owner
		return cfg
	}
}

// WithArgs forwards extra constructor arguments to setup hooks.
func WithArgs(args ...any) Option {
	return func(cfg Config) Config {
		cfg.Args = args
		return cfg
	}
}

// WithRules registers a rule refinement function. Refiners run in
// registration order, before an owner's RefineRules.
func WithRules(fn RefineFunc) Option {
	return func(cfg Config) Config {
		cfg.refiners = append(cfg.refiners, fn)
		return cfg
	}
}

// WithSetup registers a post-setup function. Setups run in registration
// order, before an owner's Setup.
func WithSetup(fn SetupFunc) Option {
	return func(cfg Config) Config {
		cfg.setups = append(cfg.setups, fn)
		return cfg
	}
}

// WithAccessor registers a hand-built accessor installed before rule-derived
// properties, so it wins any name collision. A nil read or write leaves that
// side disabled.
func WithAccessor(name string, read func(m *Model) (any, bool, error), write func(m *Model, value any) error) Option {
	return func(cfg Config) Config {
		cfg.accessors = append(cfg.accessors, accessorSpec{name: name, read: read, write: write})
		return cfg
	}
}

// WithMemo overrides the store backing cached getters.
func WithMemo(store Store[string, any]) Option {
	return func(cfg Config) Config {
		cfg.Memo = store
		return cfg
	}
}

// WithoutMemo disables getter memoization by backing it with a null store.
func WithoutMemo() Option {
	return WithMemo(newNullStore[string, any]())
}

// WithObserver attaches an observer to receive property operation events.
func WithObserver(o Observer) Option {
	return func(cfg Config) Config {
		cfg.Observer = o
		return cfg
	}
}

// WithRecordKey renames the record attachment.
func WithRecordKey(name string) Option {
	return func(cfg Config) Config {
		cfg.RecordKey = name
		return cfg
	}
}

// WithParentKey renames the parent attachment.
func WithParentKey(name string) Option {
	return func(cfg Config) Config {
		cfg.ParentKey = name
		return cfg
	}
}

// WithMemoKey renames the memo store attachment.
func WithMemoKey(name string) Option {
	return func(cfg Config) Config {
		cfg.MemoKey = name
		return cfg
	}
}

// WithListedRecord includes the record attachment in Names.
func WithListedRecord() Option {
	return func(cfg Config) Config {
		cfg.ListRecord = true
		return cfg
	}
}

// WithListedParent includes the parent attachment in Names.
func WithListedParent() Option {
	return func(cfg Config) Config {
		cfg.ListParent = true
		return cfg
	}
}

// WithUnlistedProperties excludes properties from Names.
func WithUnlistedProperties() Option {
	return func(cfg Config) Config {
		cfg.OmitProperties = true
		return cfg
	}
}

// StoreOption mutates StoreConfig when constructing a store.
type StoreOption func(StoreConfig) StoreConfig

// WithDefaultTTL overrides the entry lifetime for the expiring driver.
func WithDefaultTTL(ttl time.Duration) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.DefaultTTL = ttl
		return cfg
	}
}

// WithCleanupInterval overrides the sweep interval for the expiring driver.
func WithCleanupInterval(interval time.Duration) StoreOption {
	return func(cfg StoreConfig) StoreConfig {
		cfg.CleanupInterval = interval
		return cfg
	}
}
