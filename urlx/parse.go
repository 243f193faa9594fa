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

// parsedIndex is the intermediate result of parsing a URI-reference: the
// component offsets plus the host/port data that accessors and the
// Container constructor need beyond simple byte ranges.
type parsedIndex struct {
	offset [compEnd + 1]int
	host   hostInfo
	port   uint16
}

// scanScheme matches "ALPHA *( ALPHA / DIGIT / '+' / '-' / '.' ) ':'" at the
// start of s. It reports ok=false (not an error) when no scheme is present,
// since an absent scheme simply means s is a relative reference.
func scanScheme(s string) (name, rest string, ok bool) {
	if s == "" || !isAlpha(s[0]) {
		return "", s, false
	}
	i := 1
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	if i < len(s) && s[i] == ':' {
		return s[:i], s[i+1:], true
	}
	return "", s, false
}

// findAny returns the index of the first byte in s that is '/', '?', or '#',
// or len(s) if none is present.
func findAny(s string) int {
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '/', '?', '#':
			return i
		}
	}
	return len(s)
}

// parseURIReference parses s as a URI-reference (spec.md §6's grammar) and
// builds the component index. It does not re-encode; the input is assumed
// to be in encoded form already and is validated byte-for-byte.
func parseURIReference(s string) (parsedIndex, error) {
	var idx parsedIndex

	schemeName, rest, hasScheme := scanScheme(s)
	pos := 0
	if hasScheme {
		pos = len(schemeName) + 1
	}
	idx.offset[compUser] = pos // scheme ends here; offset[compScheme+1] == offset[compUser]

	hasAuthorityMarker := strings.HasPrefix(rest, "//")
	var authorityStr, afterAuthority string
	if hasAuthorityMarker {
		rest2 := rest[2:]
		end := findAny(rest2)
		authorityStr, afterAuthority = rest2[:end], rest2[end:]
	} else {
		afterAuthority = rest
	}

	if hasAuthorityMarker {
		userinfo, hostStr, portStr := splitAuthority(authorityStr)
		userText, passText, hasPass := splitUserinfo(userinfo)

		if err := validateUserinfo(userText); err != nil {
			return idx, err
		}
		if hasPass {
			if err := validateUserinfo(passText); err != nil {
				return idx, err
			}
		}
		if err := validatePort(portStr); err != nil {
			return idx, err
		}
		hostInfo, err := parseHostWithAuthority(hostStr, true)
		if err != nil {
			return idx, err
		}

		p := pos + len("//")
		idx.offset[compPass] = p + len(userText)
		passStored := passStoredBytes(userText, passText, hasPass)
		idx.offset[compHost] = idx.offset[compPass] + len(passStored)
		idx.offset[compPort] = idx.offset[compHost] + len(hostStr)
		portStored := ""
		if portStr != "" {
			portStored = ":" + portStr
		}
		idx.offset[compPath] = idx.offset[compPort] + len(portStored)

		idx.host = hostInfo
		idx.port = portNumber(portStr)
	} else {
		idx.offset[compPass] = pos
		idx.offset[compHost] = pos
		idx.offset[compPort] = pos
		idx.offset[compPath] = pos
		idx.host = hostInfo{kind: hostNone}
	}

	pathEndRel := 0
	for pathEndRel < len(afterAuthority) && afterAuthority[pathEndRel] != '?' && afterAuthority[pathEndRel] != '#' {
		pathEndRel++
	}
	pathStr := afterAuthority[:pathEndRel]
	if err := validatePathChars(pathStr, hasAuthorityMarker); err != nil {
		return idx, err
	}
	if err := validatePathStyle(pathStr, hasAuthorityMarker, hasScheme); err != nil {
		return idx, err
	}
	idx.offset[compQuery] = idx.offset[compPath] + len(pathStr)

	remainder := afterAuthority[pathEndRel:]
	queryStr := ""
	hasQuery := strings.HasPrefix(remainder, "?")
	if hasQuery {
		remainder = remainder[1:]
		qEnd := strings.IndexByte(remainder, '#')
		if qEnd == -1 {
			qEnd = len(remainder)
		}
		queryStr = remainder[:qEnd]
		remainder = remainder[qEnd:]
		if err := validateQueryChars(queryStr); err != nil {
			return idx, err
		}
	}
	queryStored := ""
	if hasQuery {
		queryStored = "?" + queryStr
	}
	idx.offset[compFragment] = idx.offset[compQuery] + len(queryStored)

	fragmentStr := ""
	if strings.HasPrefix(remainder, "#") {
		fragmentStr = remainder[1:]
		if err := validateFragmentChars(fragmentStr); err != nil {
			return idx, err
		}
	}
	fragmentStored := ""
	if strings.HasPrefix(remainder, "#") {
		fragmentStored = "#" + fragmentStr
	}
	idx.offset[compEnd] = idx.offset[compFragment] + len(fragmentStored)

	return idx, nil
}

// splitUserinfo splits a userinfo span into username and password per
// "userinfo = user [ ':' password ]".
func splitUserinfo(userinfo string) (user, pass string, hasPass bool) {
	i := strings.IndexByte(userinfo, ':')
	if i == -1 {
		return userinfo, "", false
	}
	return userinfo[:i], userinfo[i+1:], true
}

// passStoredBytes computes the stored "pass" component bytes, including its
// structural ':' prefix and '@' suffix, per spec.md §3's table.
func passStoredBytes(user, pass string, hasPass bool) string {
	switch {
	case hasPass:
		return ":" + pass + "@"
	case user != "":
		return "@"
	default:
		return ""
	}
}

// parseHostWithAuthority wraps parseHost but treats an empty host as
// hostName (an empty reg-name) rather than hostNone when an authority marker
// was present, per spec.md §3's "empty authority" exception.
func parseHostWithAuthority(host string, authorityPresent bool) (hostInfo, error) {
	info, err := parseHost(host)
	if err != nil {
		return info, err
	}
	if authorityPresent && info.kind == hostNone {
		info.kind = hostName
	}
	return info, nil
}
