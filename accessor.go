package model

// accessor is one installed property: a read side, a write side, or both.
// A nil side means the operation is disabled for that name.
type accessor struct {
	read   func() (any, bool, error)
	write  func(value any) error
	listed bool
}

// accessorSpec is a hand-registered accessor awaiting binding to an instance.
type accessorSpec struct {
	name  string
	read  func(m *Model) (any, bool, error)
	write func(m *Model, value any) error
}

func (spec accessorSpec) bind(m *Model) accessor {
	acc := accessor{listed: !m.cfg.OmitProperties}
	if spec.read != nil {
		read := spec.read
		acc.read = func() (any, bool, error) { return read(m) }
	}
	if spec.write != nil {
		write := spec.write
		acc.write = func(value any) error { return write(m, value) }
	}
	return acc
}

// buildAccessor resolves one rule into accessor closures. The closures
// capture the record and memo store references directly, so reads and
// writes stay wired to the shared record even when it is mutated
// externally. Returns false when the rule disables both sides.
func (m *Model) buildAccessor(field string, r *Rule) (accessor, bool) {
	get := r.Get
	set := r.Set
	if get.mode == getFunc && get.fn == nil {
		get = GetNone()
	}
	if set.mode == setFunc && set.fn == nil {
		set = SetNone()
	}
	if set.mode == setMirror {
		if get.mode == getPass {
			set = SetPass()
		} else {
			set = SetNone()
		}
	}

	acc := accessor{listed: !m.cfg.OmitProperties}
	switch get.mode {
	case getPass:
		acc.read = func() (any, bool, error) {
			value, ok := m.data[field]
			return value, ok, nil
		}
	case getFunc:
		fn := get.fn
		if r.Cache {
			acc.read = m.cachedRead(field, fn)
		} else {
			acc.read = func() (any, bool, error) {
				value, ok, err := fn(m.data[field], field, m)
				if err != nil || !ok {
					return nil, false, err
				}
				return value, true, nil
			}
		}
	}

	switch set.mode {
	case setPass:
		acc.write = func(value any) error {
			m.data[field] = value
			return nil
		}
	case setFunc:
		fn := set.fn
		acc.write = func(value any) error {
			out, ok, err := fn(value, field, m)
			if err != nil {
				return err
			}
			if ok {
				m.data[field] = out
			}
			return nil
		}
	}

	if acc.read == nil && acc.write == nil {
		return accessor{}, false
	}
	return acc, true
}

// cachedRead consults the memo store before invoking fn and memoizes any
// present result under the record field name. Absent results and errors
// are never memoized.
func (m *Model) cachedRead(field string, fn GetterFunc) func() (any, bool, error) {
	return func() (any, bool, error) {
		if value, ok := m.memo.Get(field); ok {
			return value, true, nil
		}
		value, ok, err := fn(m.data[field], field, m)
		if err != nil || !ok {
			return nil, false, err
		}
		m.memo.Set(field, value)
		return value, true, nil
	}
}
