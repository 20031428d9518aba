/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/

package postman

import (
	"fmt"

	"github.com/snowman-cli/snowman/pkg/utils"
)

// RemoteError is returned for any non-2xx response.
type RemoteError struct {
	Status int
	Body   string
}

func (e *RemoteError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("remote request failed with status %d", e.Status)
	}

	return fmt.Sprintf("remote request failed with status %d: %s", e.Status, e.Body)
}

func (e *RemoteError) Unwrap() error {
	return utils.RemoteRequestFailed
}

// DecodeError is returned when a response body does not match the expected shape.
type DecodeError struct {
	Op  string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode %s response: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{utils.DecodeFailed, e.Err}
}
