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

// splitAuthority parses an authority string (with no leading "//" and no
// trailing path/query/fragment) into its userinfo, host, and port spans. Per
// spec.md §4.3, userinfo is located by scanning for the first literal '@'
// byte before the end of the authority; percent-encoded '@' (the triplet
// "%40") never matches this scan because it contains no literal '@' byte.
func splitAuthority(authority string) (userinfo, host, port string) {
	at := -1
	for i := 0; i < len(authority); i++ {
		if authority[i] == '@' {
			at = i
			break
		}
	}

	hostport := authority
	if at != -1 {
		userinfo = authority[:at]
		hostport = authority[at+1:]
	}

	if len(hostport) > 0 && hostport[0] == '[' {
		end := -1
		for i := 0; i < len(hostport); i++ {
			if hostport[i] == ']' {
				end = i
				break
			}
		}
		if end == -1 {
			host = hostport
			return userinfo, host, port
		}
		host = hostport[:end+1]
		if len(hostport) > end+1 && hostport[end+1] == ':' {
			port = hostport[end+2:]
		}
		return userinfo, host, port
	}

	colon := -1
	for i := 0; i < len(hostport); i++ {
		if hostport[i] == ':' {
			colon = i
			break
		}
	}
	if colon == -1 {
		host = hostport
		return userinfo, host, port
	}
	host = hostport[:colon]
	port = hostport[colon+1:]
	return userinfo, host, port
}

// validateUserinfo checks that every byte of userinfo is a valid user-char or
// part of a valid %HH escape.
func validateUserinfo(userinfo string) error {
	return validateEncodedComponent(userinfo, &tableUserChar)
}

// validatePort checks that port consists only of digits, per "port = *DIGIT".
// spec.md §9's open question resolves set_port_part(":abc") as KindInvalid.
func validatePort(port string) error {
	for i := 0; i < len(port); i++ {
		if !isDigit(port[i]) {
			return newKindErrorChar(KindInvalid, i, "port must consist only of digits", rune(port[i]))
		}
	}
	return nil
}

// portNumber parses a numeric port string, returning 0 if it does not parse
// as an integer in 0..65535 (spec.md §6: "numeric port if it parses as
// 0..65535, else 0").
func portNumber(port string) uint16 {
	if port == "" || len(port) > 5 {
		return 0
	}
	v := 0
	for i := 0; i < len(port); i++ {
		if !isDigit(port[i]) {
			return 0
		}
		v = v*10 + int(port[i]-'0')
	}
	if v > 65535 {
		return 0
	}
	return uint16(v)
}

// validateEncodedComponent checks that every byte of s is either allowed by
// the table or part of a valid %HH escape.
func validateEncodedComponent(s string, allowed *[256]bool) error {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b == '%' {
			if i+2 >= len(s) || hexVal(s[i+1]) < 0 || hexVal(s[i+2]) < 0 {
				return newKindError(KindBadPercentEscape, i, "percent escape not followed by two hex digits")
			}
			i += 2
			continue
		}
		if !allowed[b] {
			return newKindErrorChar(KindInvalid, i, "character not allowed in component", rune(b))
		}
	}
	return nil
}

// hostInfo is the fully-resolved result of parsing a host component.
type hostInfo struct {
	kind     hostKind
	ipv4     [4]byte
	ipv6     [16]byte
	future   string
	hostText string // the stored (encoded) host bytes, including any brackets
}

// parseHost dispatches on the host's first byte, as specified in spec.md
// §4.3: '[' selects IP-literal; otherwise the whole span is speculatively
// tried as an IPv4Address (rejected without committing on failure), and
// falls back to reg-name.
func parseHost(host string) (hostInfo, error) {
	if host == "" {
		return hostInfo{kind: hostNone}, nil
	}

	if host[0] == '[' {
		c := newCursor(host)
		kind, ipv6, future, err := ipLiteral(c)
		if err != nil {
			return hostInfo{}, err
		}
		if !c.atEnd() {
			return hostInfo{}, newKindError(KindBadHost, 0, "trailing bytes after IP-literal")
		}
		return hostInfo{kind: kind, ipv6: ipv6, future: future, hostText: host}, nil
	}

	// Speculatively try IPv4; the whole span must be consumed, so a partial
	// match (e.g. "1.2.3.4x") falls through to reg-name instead of succeeding.
	c := newCursor(host)
	if ipv4, err := ipv4Address(c); err == nil && c.atEnd() {
		return hostInfo{kind: hostIPv4, ipv4: ipv4, hostText: host}, nil
	}

	if err := validateEncodedComponent(host, &tableRegNameChar); err != nil {
		return hostInfo{}, err
	}
	return hostInfo{kind: hostName, hostText: host}, nil
}
