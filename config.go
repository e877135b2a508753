package model

import "time"

const (
	defaultRecordKey = "_data"
	defaultParentKey = "_parent"
	defaultMemoKey   = "_memo"

	defaultStoreTTL        = 5 * time.Minute
	defaultCleanupInterval = 10 * time.Minute
)

// Config controls how a Model is constructed. Every field can be set per
// call; the zero value yields a model with default attachment names,
// unlisted attachments, and listed properties.
type Config struct {
	// RecordKey names the accessor exposing the raw record.
	RecordKey string

	// ParentKey names the accessor exposing the parent, when one is attached.
	ParentKey string

	// MemoKey names the accessor exposing the memo store.
	MemoKey string

	// ListRecord includes the record accessor in Names.
	ListRecord bool

	// ListParent includes the parent accessor in Names.
	ListParent bool

	// OmitProperties excludes rule-derived and hand-registered properties
	// from Names.
	OmitProperties bool

	// Memo overrides the store backing cached getters. Defaults to a fresh
	// map store owned by the instance.
	Memo Store[string, any]

	// Parent is attached under ParentKey when non-nil.
	Parent any

	// Owner supplies hooks via the RuleRefiner and Initializer interfaces.
	Owner any

	// Args are forwarded verbatim to setup hooks and otherwise unused.
	Args []any

	// Observer receives property operation events.
	Observer Observer

	refiners  []RefineFunc
	setups    []SetupFunc
	accessors []accessorSpec
}

func (c Config) withDefaults() Config {
	if c.RecordKey == "" {
		c.RecordKey = defaultRecordKey
	}
	if c.ParentKey == "" {
		c.ParentKey = defaultParentKey
	}
	if c.MemoKey == "" {
		c.MemoKey = defaultMemoKey
	}
	if c.Memo == nil {
		c.Memo = newMapStore[string, any]()
	}
	return c
}

// StoreConfig controls how a Store is constructed.
type StoreConfig struct {
	Driver Driver

	// DefaultTTL bounds entry lifetime for the expiring driver.
	DefaultTTL time.Duration

	// CleanupInterval controls expired-entry sweeps for the expiring driver.
	CleanupInterval time.Duration
}

func (c StoreConfig) withDefaults() StoreConfig {
	if c.Driver == "" {
		c.Driver = DriverMap
	}
	if c.DefaultTTL <= 0 {
		c.DefaultTTL = defaultStoreTTL
	}
	if c.CleanupInterval <= 0 {
		c.CleanupInterval = defaultCleanupInterval
	}
	return c
}
