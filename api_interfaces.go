package model

// ReaderAPI exposes read-oriented model operations.
type ReaderAPI interface {
	Get(name string) (any, bool, error)
	Has(name string) bool
	Names() []string
	Len() int
	Range(fn func(name string, value any) bool) error
	Snapshot() (map[string]any, error)
}

// WriterAPI exposes write operations.
type WriterAPI interface {
	Set(name string, value any) error
}

// AttachmentAPI exposes the construction-time attachments.
type AttachmentAPI interface {
	ID() string
	Record() Record
	Parent() any
	Memo() Store[string, any]
	Args() []any
}

// ModelAPI is the composed application-facing interface for Model.
type ModelAPI interface {
	ReaderAPI
	WriterAPI
	AttachmentAPI
}

var _ ModelAPI = (*Model)(nil)

// CacheAPI is the composed application-facing interface for Cache.
type CacheAPI[K comparable, V any] interface {
	Driver() Driver
	Store() Store[K, V]
	Has(key K) bool
	Get(key K) (V, bool)
	Set(key K, value V)
	Delete(key K) bool
	Clear()
	Len() int
	Range(fn func(key K, value V) bool)
	GetWith(key K, fn Producer[K, V]) (V, bool, error)
	SetWith(key K, fn Producer[K, V], deleteOnAbsent bool) (V, bool, error)
}

var _ CacheAPI[string, int] = (*Cache[string, int])(nil)

var (
	_ Store[string, any] = (*mapStore[string, any])(nil)
	_ Store[string, any] = (*expiringStore[any])(nil)
	_ Store[string, any] = (*nullStore[string, any])(nil)
)
