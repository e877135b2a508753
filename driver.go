package model

// Driver identifies a store backend.
type Driver string

const (
	DriverNull     Driver = "null"
	DriverMap      Driver = "map"
	DriverExpiring Driver = "expiring"
)
