package loop

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer receives the changes a host displays. Calls are made from the
// frame goroutine after the session lock is released, so an observer may
// call Stop or Start. Pending changes are dropped once Stop or a later
// Start takes the lock; a call that was already past that check when
// another goroutine stopped the session may still complete.
type Observer interface {
	OnScoreChange(kills int)
	OnHealthChange(health int)
	OnGameOver()
}

// ObserverFuncs adapts optional funcs to Observer. Nil funcs are skipped.
type ObserverFuncs struct {
	Score    func(kills int)
	Health   func(health int)
	GameOver func()
}

// OnScoreChange implements Observer.
func (o ObserverFuncs) OnScoreChange(kills int) {
	if o.Score != nil {
		o.Score(kills)
	}
}

// OnHealthChange implements Observer.
func (o ObserverFuncs) OnHealthChange(health int) {
	if o.Health != nil {
		o.Health(health)
	}
}

// OnGameOver implements Observer.
func (o ObserverFuncs) OnGameOver() {
	if o.GameOver != nil {
		o.GameOver()
	}
}
