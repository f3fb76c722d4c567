// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"errors"
	"fmt"
)

// A ConfigurationError reports a chart that cannot be built from the
// given container, data, or Config. The chart is left unchanged.
type ConfigurationError struct {
	// Op is the entry point or component that rejected the input,
	// such as "mount" or "geometry".
	Op string

	// Reason describes the offending input.
	Reason string

	// Err is the underlying error, if any.
	Err error
}

func (e *ConfigurationError) Error() string {
	msg := "chart: " + e.Op + ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

func configErrorf(op, format string, args ...interface{}) error {
	return &ConfigurationError{Op: op, Reason: fmt.Sprintf(format, args...)}
}

// A RuntimeAssertionError reports an entry point invoked while the
// chart was in a state that does not permit it, such as calling
// Resize from inside an OnUpdate hook.
type RuntimeAssertionError struct {
	Op    string
	State string
}

func (e *RuntimeAssertionError) Error() string {
	return fmt.Sprintf("chart: %s called while chart is %s", e.Op, e.State)
}

// IsConfigurationError reports whether any error in err's chain is a
// *ConfigurationError.
func IsConfigurationError(err error) bool {
	var ce *ConfigurationError
	return errors.As(err, &ce)
}
