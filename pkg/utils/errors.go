/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import "fmt"

// CustomError is a catalogued failure carrying the process exit code.
type CustomError struct {
	Code    int
	Message string
	Details string
}

func (e CustomError) Error() string {
	if e.Details == "" {
		return e.Message
	}

	return fmt.Sprintf("%s: %s", e.Message, e.Details)
}

// Is matches catalogued errors by code so details can vary per occurrence.
func (e CustomError) Is(target error) bool {
	t, ok := target.(CustomError)

	return ok && t.Code == e.Code
}

// WithDetails returns a copy of the error carrying the given details.
func (e CustomError) WithDetails(format string, args ...any) CustomError {
	e.Details = fmt.Sprintf(format, args...)

	return e
}
