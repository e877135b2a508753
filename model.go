package model

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Record is the raw keyed data a model wraps. The model holds the map
// reference for its lifetime and never copies it: external mutation of the
// record is visible through accessors, and accessor writes are visible
// through the original map.
type Record = map[string]any

// Model wraps a record in generated accessor properties. Each property is
// derived from a Rule and proxies reads and writes to the shared record,
// optionally transformed by getter/setter functions and memoized through
// the memo store. Models are synchronous and single-owner; no internal
// locking is provided.
type Model struct {
	id        string
	data      Record
	parent    any
	memo      Store[string, any]
	args      []any
	cfg       Config
	accessors map[string]accessor
	observer  Observer
}

// New wraps record in a model whose accessors mirror its fields.
// @group Model
//
// Example: plain passthrough model
//
//	m, _ := model.New(model.Record{"name": "Ada", "age": 36})
//	name, ok, _ := m.Get("name")
//	fmt.Println(ok, name) // true Ada
//
// Example: customized rules via options
//
//	m, _ := model.New(model.Record{"age": 30}, model.WithRules(func(rules model.RuleSet) {
//		rules["age"].Set = model.SetNone()
//	}))
//	err := m.Set("age", 31)
//	fmt.Println(errors.Is(err, model.ErrReadOnlyProperty)) // true
func New(record Record, opts ...Option) (*Model, error) {
	return NewWithConfig(record, Config{}, opts...)
}

// NewWithConfig is New with an explicit starting Config. Options are applied
// on top of cfg. Construction either returns a fully built instance or an
// error; a failed construction never escapes.
// @group Model
func NewWithConfig(record Record, cfg Config, opts ...Option) (*Model, error) {
	if record == nil {
		return nil, ErrInvalidRecord
	}
	for _, opt := range opts {
		cfg = opt(cfg)
	}
	cfg = cfg.withDefaults()

	m := &Model{
		id:        newModelID(),
		data:      record,
		parent:    cfg.Parent,
		memo:      cfg.Memo,
		args:      cfg.Args,
		cfg:       cfg,
		accessors: make(map[string]accessor),
		observer:  cfg.Observer,
	}

	// Attachments and hand-registered accessors install first, so
	// rule-derived properties can never shadow them.
	m.installAttachments()
	for _, spec := range cfg.accessors {
		m.install(spec.name, spec.bind(m))
	}

	rules := defaultRules(record)
	for _, refine := range cfg.refiners {
		refine(rules)
	}
	if refiner, ok := cfg.Owner.(RuleRefiner); ok {
		refiner.RefineRules(rules)
	}
	m.installRules(rules)

	for _, setup := range cfg.setups {
		if err := setup(m, m.args...); err != nil {
			return nil, err
		}
	}
	if init, ok := cfg.Owner.(Initializer); ok {
		if err := init.Setup(m, m.args...); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// ID returns the construction-time instance identifier.
func (m *Model) ID() string { return m.id }

// Record returns the shared record reference.
func (m *Model) Record() Record { return m.data }

// Parent returns the attached parent, or nil when none was supplied.
func (m *Model) Parent() any { return m.parent }

// Memo returns the store backing cached getters. Deleting a field's entry
// forces the next cached read to recompute.
func (m *Model) Memo() Store[string, any] { return m.memo }

// Args returns the extra constructor arguments forwarded to setup hooks.
func (m *Model) Args() []any { return m.args }

// Get reads the property called name. ok is false when no readable accessor
// exists, the record field is absent, or a function getter reported an
// absent result. Getter errors propagate unwrapped.
// @group Model
//
// Example: read through an accessor
//
//	m, _ := model.New(model.Record{"host": "localhost"})
//	host, ok, _ := m.Get("host")
//	fmt.Println(ok, host) // true localhost
func (m *Model) Get(name string) (any, bool, error) {
	acc, exists := m.accessors[name]
	if !exists || acc.read == nil {
		m.observe("get", name, false, nil)
		return nil, false, nil
	}
	value, ok, err := acc.read()
	m.observe("get", name, ok, err)
	return value, ok, err
}

// Set writes value to the property called name. Unknown names fail with
// ErrUnknownProperty and getter-only properties with ErrReadOnlyProperty;
// setter errors propagate unwrapped.
// @group Model
//
// Example: write through an accessor
//
//	record := model.Record{"age": 30}
//	m, _ := model.New(record)
//	_ = m.Set("age", 31)
//	fmt.Println(record["age"]) // 31
func (m *Model) Set(name string, value any) error {
	acc, exists := m.accessors[name]
	if !exists {
		err := fmt.Errorf("%w: %q", ErrUnknownProperty, name)
		m.observe("set", name, false, err)
		return err
	}
	if acc.write == nil {
		err := fmt.Errorf("%w: %q", ErrReadOnlyProperty, name)
		m.observe("set", name, false, err)
		return err
	}
	err := acc.write(value)
	m.observe("set", name, err == nil, err)
	return err
}

// Has reports whether an accessor named name is installed, readable or not.
func (m *Model) Has(name string) bool {
	_, ok := m.accessors[name]
	return ok
}

// Names returns the listed accessor names in sorted order. Attachments are
// excluded unless configured listed; properties are included unless the
// model was built with unlisted properties.
// @group Model
func (m *Model) Names() []string {
	names := make([]string, 0, len(m.accessors))
	for name, acc := range m.accessors {
		if acc.listed {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Len reports how many listed accessors the model exposes.
func (m *Model) Len() int {
	n := 0
	for _, acc := range m.accessors {
		if acc.listed {
			n++
		}
	}
	return n
}

// Range visits listed properties in sorted order with the value their read
// produced. Write-only properties and absent reads are skipped. A getter
// error stops the walk and is returned.
func (m *Model) Range(fn func(name string, value any) bool) error {
	for _, name := range m.Names() {
		acc := m.accessors[name]
		if acc.read == nil {
			continue
		}
		value, ok, err := acc.read()
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if !fn(name, value) {
			return nil
		}
	}
	return nil
}

// Snapshot materializes the listed, readable properties into a plain map.
// The result is a fresh map; mutating it does not touch the record.
// @group Model
//
// Example: export public shape
//
//	m, _ := model.New(model.Record{"name": "Ada", "age": 36})
//	snap, _ := m.Snapshot()
//	fmt.Println(snap["name"], snap["age"]) // Ada 36
func (m *Model) Snapshot() (map[string]any, error) {
	out := make(map[string]any, len(m.accessors))
	err := m.Range(func(name string, value any) bool {
		out[name] = value
		return true
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (m *Model) installAttachments() {
	m.install(m.cfg.RecordKey, accessor{
		read:   func() (any, bool, error) { return m.data, true, nil },
		listed: m.cfg.ListRecord,
	})
	if m.parent != nil {
		m.install(m.cfg.ParentKey, accessor{
			read:   func() (any, bool, error) { return m.parent, true, nil },
			listed: m.cfg.ListParent,
		})
	}
	m.install(m.cfg.MemoKey, accessor{
		read: func() (any, bool, error) { return m.memo, true, nil },
	})
}

// installRules walks fields in sorted order so rules renamed to the same
// public key resolve deterministically: the lowest field name wins.
func (m *Model) installRules(rules RuleSet) {
	fields := make([]string, 0, len(rules))
	for field := range rules {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		r := rules[field]
		if r == nil {
			continue
		}
		name := r.Key
		if name == "" {
			name = field
		}
		acc, ok := m.buildAccessor(field, r)
		if !ok {
			continue
		}
		m.install(name, acc)
	}
}

// install never overwrites: whoever occupies a name first keeps it.
func (m *Model) install(name string, acc accessor) {
	if _, exists := m.accessors[name]; exists {
		return
	}
	m.accessors[name] = acc
}

func (m *Model) observe(op, name string, hit bool, err error) {
	if m.observer == nil {
		return
	}
	m.observer.OnOp(op, name, hit, err, m.id)
}

func newModelID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
