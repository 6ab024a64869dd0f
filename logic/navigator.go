package logic

import "sync/atomic"

// INavigator carries the "go to the login view" signal from the session layer to the web layer.
type INavigator interface {
	ToLogin()
	// TakeRedirect returns true once for each pending ToLogin.
	TakeRedirect() bool
}

type navigator struct {
	pending atomic.Bool
}

func NewNavigator() INavigator {
	return &navigator{}
}

func (nav *navigator) ToLogin() {
	nav.pending.Store(true)
}

func (nav *navigator) TakeRedirect() bool {
	return nav.pending.Swap(false)
}
