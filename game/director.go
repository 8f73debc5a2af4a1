package game

// Director plays a session on its own
type Director interface {
	// Init attaches the director to a session
	Init(*Session)

	// Act performs a single step of actions
	Act()

	// End stops the director; Act must not be called afterwards
	End()
}
