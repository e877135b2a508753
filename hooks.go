package model

// RefineFunc adjusts the default rule set before accessors are installed.
// It receives the full set by reference and mutates it in place.
type RefineFunc func(rules RuleSet)

// SetupFunc runs after all accessors are installed. args are the extra
// constructor arguments. An error aborts construction.
type SetupFunc func(m *Model, args ...any) error

// RuleRefiner is implemented by owners that customize accessor rules.
// @group Hooks
//
// Example: owner-driven rules
//
//	type account struct{}
//
//	func (account) RefineRules(rules model.RuleSet) {
//		delete(rules, "secret")
//	}
//
//	m, _ := model.New(model.Record{"id": 7, "secret": "x"}, model.WithOwner(account{}))
//	fmt.Println(m.Has("secret")) // false
type RuleRefiner interface {
	RefineRules(rules RuleSet)
}

// Initializer is implemented by owners that finish construction themselves.
// Setup runs once after accessors are installed; an error aborts
// construction and the instance never escapes.
// @group Hooks
type Initializer interface {
	Setup(m *Model, args ...any) error
}
