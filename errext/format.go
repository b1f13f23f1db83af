package errext

import (
	"errors"
)

// HasNativeLog is an error that carries the native linker's error log.
type HasNativeLog interface {
	error
	Log() string
}

// Format formats the given error as a message (string) and a map of fields.
// In case of [HasHint], it adds the hint as a field; in case of
// [HasNativeLog], it adds the captured native error log as a field.
func Format(err error) (string, map[string]interface{}) {
	if err == nil {
		return "", nil
	}

	fields := make(map[string]interface{})
	var herr HasHint
	if errors.As(err, &herr) {
		fields["hint"] = herr.Hint()
	}
	var lerr HasNativeLog
	if errors.As(err, &lerr) {
		if log := lerr.Log(); log != "" {
			fields["native_log"] = log
		}
	}

	return err.Error(), fields
}
