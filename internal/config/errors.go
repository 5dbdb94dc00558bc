package config

// Error reports invalid or inconsistent configuration, including module
// paths that fall outside the configured workspace root.
type Error struct {
	Msg string
}

func (e *Error) Error() string {
	return "configuration: " + e.Msg
}
