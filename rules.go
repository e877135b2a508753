package model

// GetterFunc computes a property value from the raw record field. raw is the
// current record value for field; returning ok=false reports an absent
// result, which the model surfaces as a miss and never memoizes.
type GetterFunc func(raw any, field string, m *Model) (any, bool, error)

// SetterFunc transforms an assigned value before it reaches the record.
// Returning ok=true writes the returned value to the record field; ok=false
// means the setter performed (or suppressed) the write itself.
type SetterFunc func(value any, field string, m *Model) (any, bool, error)

type getMode uint8

const (
	getPass getMode = iota
	getNone
	getFunc
)

// GetPolicy selects how reads of a property behave. The zero value mirrors
// the record field.
type GetPolicy struct {
	mode getMode
	fn   GetterFunc
}

// GetPass mirrors the record field on every read. This is the zero value.
func GetPass() GetPolicy { return GetPolicy{mode: getPass} }

// GetNone disables reads for the property.
func GetNone() GetPolicy { return GetPolicy{mode: getNone} }

// GetFunc routes reads through fn.
func GetFunc(fn GetterFunc) GetPolicy { return GetPolicy{mode: getFunc, fn: fn} }

type setMode uint8

const (
	setMirror setMode = iota
	setPass
	setNone
	setFunc
)

// SetPolicy selects how writes to a property behave. The zero value is
// resolved at install time: writes pass through when the get policy is the
// plain mirror, and are disabled otherwise.
type SetPolicy struct {
	mode setMode
	fn   SetterFunc
}

// SetMirror defers to the get policy at install time. This is the zero value.
func SetMirror() SetPolicy { return SetPolicy{mode: setMirror} }

// SetPass assigns the written value to the record field.
func SetPass() SetPolicy { return SetPolicy{mode: setPass} }

// SetNone disables writes for the property.
func SetNone() SetPolicy { return SetPolicy{mode: setNone} }

// SetFunc routes writes through fn.
func SetFunc(fn SetterFunc) SetPolicy { return SetPolicy{mode: setFunc, fn: fn} }

// Rule describes how one record field becomes a model property.
// @group Rules
type Rule struct {
	// Key is the public property name. Defaults to the record field name.
	Key string

	Get GetPolicy
	Set SetPolicy

	// Cache memoizes function getter results in the model memo store,
	// keyed by the record field name. Ignored for pass-through getters.
	Cache bool
}

// RuleSet maps record field names to their accessor rules. Refiners may
// rewrite or delete entries; the set is treated as frozen once accessor
// installation begins.
// @group Rules
//
// Example: rename a field and derive its value
//
//	m, _ := model.New(model.Record{"age": 30}, model.WithRules(func(rules model.RuleSet) {
//		rules["age"].Key = "years"
//		rules["age"].Get = model.GetFunc(func(raw any, _ string, _ *model.Model) (any, bool, error) {
//			return raw.(int) * 2, true, nil
//		})
//	}))
//	years, ok, _ := m.Get("years")
//	fmt.Println(ok, years) // true 60
type RuleSet map[string]*Rule

// defaultRules yields one pass-through rule per record field.
func defaultRules(record Record) RuleSet {
	rules := make(RuleSet, len(record))
	for field := range record {
		rules[field] = &Rule{Key: field}
	}
	return rules
}
