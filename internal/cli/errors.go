package cli

import "fmt"

type notFoundError struct {
	kind string
	id   string
}

func (e notFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.kind, e.id)
}

func errNotFound(kind, id string) error {
	return notFoundError{kind: kind, id: id}
}

type rangeError struct {
	flag     string
	val      int
	min, max int
}

func (e rangeError) Error() string {
	return fmt.Sprintf("--%s must be between %d and %d (got %d)", e.flag, e.min, e.max, e.val)
}
