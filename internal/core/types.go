package core

// Sim defines the minimal contract a tick-driven simulation must implement
// for the drivers in cmd/.
type Sim interface {
	Name() string
	Reset(seed int64) error
	Step() error
	Tick() int
}
