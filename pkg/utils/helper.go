/*********************************************************************
 * Copyright (c) Snowman Contributors 2025
 * SPDX-License-Identifier: Apache-2.0
 **********************************************************************/
package utils

import (
	"os"
	"strings"
)

func LookupEnv(key string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}

	return ""
}

// LookupEnvOrDefault returns the trimmed value of key, or fallback when unset or blank.
func LookupEnvOrDefault(key, fallback string) string {
	if val := strings.TrimSpace(LookupEnv(key)); val != "" {
		return val
	}

	return fallback
}

// EnvKey returns the exported variable name for a remote variable key.
func EnvKey(key string) string {
	return EnvPrefix + key
}

// RedactSecret keeps the first and last two characters of a secret for display.
func RedactSecret(secret string) string {
	const keep = 2

	if len(secret) <= keep*2 {
		return strings.Repeat("*", len(secret))
	}

	return secret[:keep] + strings.Repeat("*", len(secret)-keep*2) + secret[len(secret)-keep:]
}
