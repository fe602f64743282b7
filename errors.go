package gifout

import "fmt"

type (
	// A ValidationError reports caller-supplied geometry or frame counts that
	// can never produce a valid stream.
	ValidationError string
	// An UnsupportedError reports a request for a capability the GIF container
	// does not have, such as volumetric frames or MIP levels.
	UnsupportedError string
	// A StateError reports an operation invoked outside its place in the
	// open/append/close lifecycle.
	StateError string
)

func (e ValidationError) Error() string  { return "gifout: " + string(e) }
func (e UnsupportedError) Error() string { return "gifout: " + string(e) }
func (e StateError) Error() string       { return "gifout: " + string(e) }

func validationf(format string, args ...any) ValidationError {
	return ValidationError(fmt.Sprintf(format, args...))
}

func unsupportedf(format string, args ...any) UnsupportedError {
	return UnsupportedError(fmt.Sprintf(format, args...))
}

func statef(format string, args ...any) StateError {
	return StateError(fmt.Sprintf(format, args...))
}
