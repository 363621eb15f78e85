/*
 *     Copyright 2024 The BioSentience Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package bserrors defines the error taxonomy shared by the service layer
// and the HTTP middleware: validation errors carry a caller-facing message
// and map to 4xx responses, everything else is an internal failure.
package bserrors

import (
	stderrors "errors"

	"github.com/pkg/errors"
)

// ValidationError is a rejected request input. It is never fatal to the
// process and its message is safe to show to the caller.
type ValidationError struct {
	cause error
}

func (e *ValidationError) Error() string {
	return e.cause.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.cause
}

// Validation wraps err as a validation error.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{cause: err}
}

// Validationf builds a validation error from a format string.
func Validationf(format string, args ...any) error {
	return &ValidationError{cause: errors.Errorf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a validation error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return stderrors.As(err, &ve)
}
