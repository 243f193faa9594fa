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

// HostKind is the public name for the internal host-kind enumeration
// returned by HostType.
type HostKind = hostKind

// The exported host-kind values, per spec.md §6's host_type() accessor.
const (
	HostNone      = hostNone
	HostName      = hostName
	HostIPv4      = hostIPv4
	HostIPv6      = hostIPv6
	HostIPvFuture = hostIPvFuture
)

// Scheme returns the scheme component without its trailing ':'. The scheme
// alphabet contains no percent-encoding, so there is no decoded variant.
func (u *Container) Scheme() string {
	s := u.schemeBytes()
	if s == "" {
		return s
	}
	return s[:len(s)-1]
}

// User returns the encoded user subcomponent of userinfo, without the
// leading "//" that marks authority presence (the stored component carries
// it per spec.md §4.4's authority state machine).
func (u *Container) User() string { return u.userText() }

// userText strips the "//" authority marker, if any, from the raw stored
// user component, leaving the bare user text that parse/set actually see.
func (u *Container) userText() string {
	s := u.userBytes()
	if len(s) >= 2 && s[0] == '/' && s[1] == '/' {
		return s[2:]
	}
	return s
}

// DecodedUser percent-decodes User.
func (u *Container) DecodedUser() (string, error) { return decodeComponent(u.userText(), true) }

// HasPassword reports whether a ':' password separator was present in the
// parsed userinfo, even if the password text itself is empty.
func (u *Container) HasPassword() bool {
	p := u.passBytes()
	return len(p) > 0 && p[0] == ':'
}

// Password returns the encoded password subcomponent, without its leading
// ':' or trailing '@'.
func (u *Container) Password() string {
	p := u.passBytes()
	if p == "" {
		return ""
	}
	if p[0] == ':' {
		p = p[1:]
	}
	if len(p) > 0 && p[len(p)-1] == '@' {
		p = p[:len(p)-1]
	}
	return p
}

// DecodedPassword percent-decodes Password.
func (u *Container) DecodedPassword() (string, error) { return decodeComponent(u.Password(), true) }

// Userinfo returns the encoded "user[:password]" span, without the trailing '@'.
func (u *Container) Userinfo() string {
	user, pass := u.User(), u.Password()
	if !u.HasPassword() {
		return user
	}
	return user + ":" + pass
}

// Host returns the encoded host component, including the surrounding
// brackets for an IPv6 or IPvFuture literal.
func (u *Container) Host() string { return u.hostBytes() }

// DecodedHost percent-decodes Host. IP literals contain no percent-encoding,
// so this only differs from Host for a reg-name.
func (u *Container) DecodedHost() (string, error) { return decodeComponent(u.hostBytes(), true) }

// HostType reports which of the five host forms the host component holds.
func (u *Container) HostType() HostKind { return u.hostKind }

// IPv4Address returns the 4-byte address and true when HostType is HostIPv4.
func (u *Container) IPv4Address() ([4]byte, bool) {
	if u.hostKind != hostIPv4 {
		return [4]byte{}, false
	}
	var out [4]byte
	copy(out[:], u.ipAddr[:4])
	return out, true
}

// IPv6Address returns the 16-byte address and true when HostType is HostIPv6.
func (u *Container) IPv6Address() ([16]byte, bool) {
	if u.hostKind != hostIPv6 {
		return [16]byte{}, false
	}
	return u.ipAddr, true
}

// IPvFuture returns the "vX.addr" text and true when HostType is HostIPvFuture.
func (u *Container) IPvFuture() (string, bool) {
	if u.hostKind != hostIPvFuture {
		return "", false
	}
	return u.future, true
}

// Port returns the encoded port component, without its leading ':'.
func (u *Container) Port() string {
	p := u.portBytes()
	if len(p) > 0 && p[0] == ':' {
		return p[1:]
	}
	return p
}

// PortNumber returns the numeric port, or 0 when absent or out of range
// (spec.md §6: "numeric port if it parses as 0..65535, else 0").
func (u *Container) PortNumber() uint16 { return u.portNum }

// Path returns the encoded path component.
func (u *Container) Path() string { return u.pathBytes() }

// DecodedPath percent-decodes Path.
func (u *Container) DecodedPath() (string, error) { return decodeComponent(u.pathBytes(), true) }

// Query returns the encoded query component, without its leading '?'.
func (u *Container) Query() string {
	q := u.queryBytes()
	if len(q) > 0 && q[0] == '?' {
		return q[1:]
	}
	return q
}

// DecodedQuery percent-decodes Query.
func (u *Container) DecodedQuery() (string, error) { return decodeComponent(u.Query(), true) }

// Fragment returns the encoded fragment component, without its leading '#'.
func (u *Container) Fragment() string {
	f := u.fragmentBytes()
	if len(f) > 0 && f[0] == '#' {
		return f[1:]
	}
	return f
}

// DecodedFragment percent-decodes Fragment.
func (u *Container) DecodedFragment() (string, error) { return decodeComponent(u.Fragment(), true) }

// NumSegments returns the cached path-segment count.
func (u *Container) NumSegments() int { return u.nseg }

// NumParams returns the cached query-parameter count.
func (u *Container) NumParams() int { return u.nparam }

// HasAuthority reports whether the "//" authority marker is present.
func (u *Container) HasAuthority() bool { return u.hasAuthority() }

// HasScheme reports whether the scheme component is non-empty.
func (u *Container) HasScheme() bool { return u.schemeBytes() != "" }

// HasQuery reports whether the '?' query delimiter is present, distinguishing
// "no query" from "an explicitly empty query" (e.g. the trailing "?" in "a?").
func (u *Container) HasQuery() bool { return u.queryBytes() != "" }

// HasFragment reports whether the '#' fragment delimiter is present,
// distinguishing "no fragment" from "an explicitly empty fragment".
func (u *Container) HasFragment() bool { return u.fragmentBytes() != "" }

// RemoveDotSegments applies the RFC 3986 Section 5.2.4 remove-dot-segments
// algorithm to an arbitrary encoded path string. It is exported for the
// urlx/resolve package, which builds resolved paths outside this package.
func RemoveDotSegments(path string) string { return removeDotSegments(path) }
