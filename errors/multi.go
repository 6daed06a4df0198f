package errors

import "strings"

// Append clubs together all provided errors. Nil values are ignored.
//
// If given errors contain instances of a multi error, they are flattened so
// that the result is always a single level deep collection.
func Append(errs ...error) error {
	var res multiError
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiError); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	if len(res) == 0 {
		return nil
	}
	return res
}

// multiError is a collection of errors. Use Append to create instances.
type multiError []error

func (errs multiError) Error() string {
	switch len(errs) {
	case 0:
		return "<nil>"
	case 1:
		return errs[0].Error()
	}
	descs := make([]string, len(errs))
	for i, err := range errs {
		descs[i] = err.Error()
	}
	return strings.Join(descs, "; ")
}

// Unpack returns all errors that this collection contains.
func (errs multiError) Unpack() []error {
	return errs
}

// unpacker is implemented by errors that hold multiple child errors.
type unpacker interface {
	Unpack() []error
}
