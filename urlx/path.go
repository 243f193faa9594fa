/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlx

import "strings"

// validatePathChars checks every byte of an encoded path against pchar/':'/'@'/'/'
// (plus valid %HH escapes), and enforces the "no authority => path cannot
// start with //" rule from RFC 3986 Section 3.3.
func validatePathChars(path string, hasAuthority bool) error {
	if !hasAuthority && strings.HasPrefix(path, "//") {
		return newKindError(KindInvalid, 0, "path cannot start with '//' when no authority is present")
	}
	for i := 0; i < len(path); i++ {
		b := path[i]
		if b == '%' {
			if i+2 >= len(path) || hexVal(path[i+1]) < 0 || hexVal(path[i+2]) < 0 {
				return newKindError(KindBadPercentEscape, i, "percent escape not followed by two hex digits")
			}
			i += 2
			continue
		}
		if !tablePathChar[b] {
			return newKindErrorChar(KindInvalid, i, "character not allowed in path", rune(b))
		}
	}
	return nil
}

// validatePathStyle enforces which of the five RFC 3986 path styles is legal
// given whether an authority and/or a scheme is present.
//
//   - hasAuthority        => path-abempty: empty, or starts with "/".
//   - !hasAuthority && hasScheme  => path-absolute / path-rootless / path-empty:
//     any style is fine once the "//" guard above has run.
//   - !hasAuthority && !hasScheme => path-noscheme / path-absolute / path-empty:
//     the first segment must not contain an unencoded ':'.
func validatePathStyle(path string, hasAuthority, hasScheme bool) error {
	if hasAuthority {
		if path != "" && path[0] != '/' {
			return newKindError(KindInvalid, 0, "path must be empty or start with '/' when an authority is present")
		}
		return nil
	}
	if hasScheme {
		return nil
	}
	// path-noscheme: first segment (up to the first '/') must have no raw ':'.
	firstSlash := strings.IndexByte(path, '/')
	firstSegment := path
	if firstSlash != -1 {
		firstSegment = path[:firstSlash]
	}
	if strings.IndexByte(firstSegment, ':') != -1 {
		return newKindError(KindInvalid, 0, "first path segment of a schemeless relative reference cannot contain ':'")
	}
	return nil
}

// countSegments returns the number of path segments per spec.md §3's nseg
// field: the path split on '/', with the leading empty piece produced by a
// leading '/' dropped (so "/a/b" and "a/b" both have 2 segments).
func countSegments(path string) int {
	if path == "" {
		return 0
	}
	parts := strings.Split(path, "/")
	if parts[0] == "" {
		parts = parts[1:]
	}
	return len(parts)
}

// pathSegments returns the encoded path split into its segments, using the
// same leading-slash rule as countSegments.
func pathSegments(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(path, "/")
	if parts[0] == "" {
		parts = parts[1:]
	}
	return parts
}

// joinSegments rebuilds an encoded path from segments, preserving whether
// the original path was absolute (leading '/').
func joinSegments(segments []string, absolute bool) string {
	joined := strings.Join(segments, "/")
	if absolute {
		return "/" + joined
	}
	return joined
}

// applyDotSegmentRules handles rules 2A-2D of RFC 3986, Section 5.2.4.
func applyDotSegmentRules(in string, output []string) (string, []string, bool) {
	if strings.HasPrefix(in, "../") {
		return in[3:], output, true
	}
	if strings.HasPrefix(in, "./") {
		return in[2:], output, true
	}
	if strings.HasPrefix(in, "/./") {
		return "/" + in[3:], output, true
	}
	if in == "/." {
		return "/", output, true
	}
	if strings.HasPrefix(in, "/../") || in == "/.." {
		newIn := "/"
		if len(in) > len("/..") {
			newIn += in[4:]
		}
		if len(output) > 0 {
			lastSegment := output[len(output)-1]
			output = output[:len(output)-1]
			if len(output) == 0 && !strings.HasPrefix(lastSegment, "/") {
				newIn = strings.TrimPrefix(newIn, "/")
			}
		}
		return newIn, output, true
	}
	if in == "." || in == ".." {
		return "", output, true
	}
	return in, output, false
}

// extractFirstSegment handles rule 2E of RFC 3986, Section 5.2.4.
func extractFirstSegment(in string) (string, string) {
	if strings.HasPrefix(in, "/") {
		nextSlash := strings.Index(in[1:], "/")
		if nextSlash == -1 {
			return in, ""
		}
		return in[:nextSlash+1], in[nextSlash+1:]
	}
	slashIndex := strings.Index(in, "/")
	if slashIndex == -1 {
		return in, ""
	}
	return in[:slashIndex], in[slashIndex:]
}

// removeDotSegments implements the "Remove Dot Segments" algorithm of
// RFC 3986, Section 5.2.4, used by normalize() to collapse "." and "..".
func removeDotSegments(input string) string {
	var output []string
	in := input
	for len(in) > 0 {
		var applied bool
		in, output, applied = applyDotSegmentRules(in, output)
		if applied {
			continue
		}
		var segment, remainder string
		segment, remainder = extractFirstSegment(in)
		in = remainder
		output = append(output, segment)
	}
	return strings.Join(output, "")
}
