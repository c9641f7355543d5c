package services

// Token grants scoped access to the process-wide service system. The scheduler
// borrows it only while reporting an exception and broadcasting termination;
// it never retains the activation past the call.
type Token interface {
	// Activate makes the services available on the calling goroutine and
	// returns the release function ending the scope.
	Activate() (release func())
}

// NopToken is the Token used when no service system is wired, in tests and in
// standalone harnesses.
type NopToken struct{}

func (NopToken) Activate() (release func()) {
	return func() {}
}
