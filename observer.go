package model

// Observer receives events for model property and cache operations.
// It is called after each operation completes. The source is the model ID
// for property events and the store driver for cache events.
type Observer interface {
	OnOp(op string, name string, hit bool, err error, source string)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(op string, name string, hit bool, err error, source string)

// OnOp implements Observer.
func (f ObserverFunc) OnOp(op string, name string, hit bool, err error, source string) {
	if f == nil {
		return
	}
	f(op, name, hit, err, source)
}
