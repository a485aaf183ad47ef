package parser

import (
	"strings"
)

/* These operate on raw captured header lines (status line first, then
 * "Name: value" lines), not an http.Header - the redirect check keeps
 * the raw lines around for the debug dump, so we parse what we kept.
 */

// StatusCode pulls the numeric code out of the status line, eg "301"
// from "HTTP/2.0 301 Moved Permanently". Empty string if the capture is
// empty or the line doesn't have one.
func StatusCode(headers []string) string {
	if len(headers) == 0 {
		return ""
	}

	fields := strings.Fields(headers[0])
	if len(fields) < 2 {
		return ""
	}

	return fields[1]
}

// Location returns the value of the Location header, or "" if absent.
// Matching is case-insensitive; HTTP/2 responses arrive with lowercased
// field names.
func Location(headers []string) string {
	for _, line := range headers {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.EqualFold(name, "Location") {
			return strings.TrimSpace(value)
		}
	}

	return ""
}
