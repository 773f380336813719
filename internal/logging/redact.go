// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

package logging

import "strings"

// maxLoggedBody bounds vendor response excerpts written to the log.
const maxLoggedBody = 200

// bodyRedacted replaces a vendor body that mentions credentials.
const bodyRedacted = "[redacted]"

var sensitiveFragments = []string{
	"access_token",
	"client_secret",
	"authorization",
	"bearer",
	"password",
}

// MaskSecret shows only the first and last 4 characters of a credential.
// Values of 12 characters or fewer are fully masked.
//
//	MaskSecret("3f9a8b7c6d5e4f3a2b1c") // "3f9a...2b1c"
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 12 {
		return "***"
	}
	return secret[:4] + "..." + secret[len(secret)-4:]
}

// SanitizeBody prepares a vendor response excerpt for logging. Bodies that
// mention credentials are replaced entirely; others are trimmed and truncated.
func SanitizeBody(body string) string {
	lower := strings.ToLower(body)
	for _, fragment := range sensitiveFragments {
		if strings.Contains(lower, fragment) {
			return bodyRedacted
		}
	}
	return truncateString(strings.TrimSpace(body), maxLoggedBody)
}

// SanitizeValue masks value when key names a credential.
func SanitizeValue(key, value string) string {
	switch strings.ToLower(key) {
	case "client_id", "client_secret", "access_token", "token", "authorization", "secret":
		return MaskSecret(value)
	}
	return value
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
