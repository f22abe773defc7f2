package utils

import "fmt"

// wrap returns nil for a nil err so callers can wrap the result of a call unconditionally.
func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s error: %w", op, err)
}

// WrapOpenError returns a wrapped open error
func WrapOpenError(err error) error {
	return wrap("open", err)
}

// WrapSaveError returns a wrapped save error
func WrapSaveError(err error) error {
	return wrap("save", err)
}

// WrapUploadError returns a wrapped upload error
func WrapUploadError(err error) error {
	return wrap("upload", err)
}

// WrapDeleteError returns a wrapped delete error
func WrapDeleteError(err error) error {
	return wrap("delete", err)
}

// WrapExistsError returns a wrapped exists error
func WrapExistsError(err error) error {
	return wrap("exists", err)
}

// WrapListError returns a wrapped list error
func WrapListError(err error) error {
	return wrap("list", err)
}

// WrapSizeError returns a wrapped size error
func WrapSizeError(err error) error {
	return wrap("size", err)
}

// WrapURLError returns a wrapped url error
func WrapURLError(err error) error {
	return wrap("url", err)
}

// WrapTimeError returns a wrapped time error
func WrapTimeError(err error) error {
	return wrap("time", err)
}

// WrapNameError returns a wrapped name error
func WrapNameError(err error) error {
	return wrap("name", err)
}
