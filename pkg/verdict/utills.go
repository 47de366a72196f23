package verdict

import (
	"reflect"
)

// IsNil reports whether i is the null sentinel: a nil interface or a typed
// nil pointer. Falsy-but-present values (false, 0, "") are not nil.
func IsNil(i interface{}) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Flatten expands a joined error into its parts via the Unwrap() []error
// protocol. A nil error flattens to an empty slice, any other error to a
// single-element slice.
func Flatten(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}
