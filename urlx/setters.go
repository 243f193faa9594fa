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

// SetScheme replaces the scheme with raw, which must already be a valid
// scheme (the scheme grammar has no percent-encoded escape to fall back on,
// so unlike the other set_X(raw) setters this one validates strictly rather
// than auto-encoding).
func (u *Container) SetScheme(raw string) error {
	if raw == "" {
		u.splice(compScheme, nil)
		u.refreshDerived()
		return nil
	}
	c := newCursor(raw)
	if err := parseAll(c, func(c *cursor) error { _, err := scheme(c); return err }); err != nil {
		return newParseError(err)
	}
	u.splice(compScheme, append([]byte(raw), ':'))
	u.refreshDerived()
	return nil
}

// SetSchemePart sets the scheme from delimiter-inclusive input: the scheme
// name followed by its stored trailing ':' (e.g. "https:"), per spec.md
// §4.4's stored-byte-layout table (the scheme component's stored suffix is
// ':'). It validates exactly as SetScheme does, then delegates to it.
func (u *Container) SetSchemePart(part string) error {
	if part == "" || part[len(part)-1] != ':' {
		return newParseError(newKindError(KindInvalid, 0, "scheme-part must end with ':'"))
	}
	name := part[:len(part)-1]
	if name == "" {
		return newParseError(newKindError(KindInvalid, 0, "scheme-part must not be empty before ':'"))
	}
	return u.SetScheme(name)
}

// ensureAuthority turns on the "//" authority marker if it is not already
// present, per spec.md §4.4's state-machine table. It is a no-op when an
// authority already exists.
func (u *Container) ensureAuthority() {
	if u.hasAuthority() {
		return
	}
	u.spliceAuthority([4][]byte{[]byte("//"), nil, nil, nil})
	u.hostKind = hostName
}

// dropAuthorityIfEmpty turns off the "//" authority marker once user, pass,
// host, and port are all simultaneously empty.
func (u *Container) dropAuthorityIfEmpty() {
	if u.userText() == "" && u.passBytes() == "" && u.hostBytes() == "" && u.portBytes() == "" {
		if u.hasAuthority() {
			u.spliceAuthority([4][]byte{nil, nil, nil, nil})
		}
		u.hostKind = hostNone
		u.ipAddr = [16]byte{}
		u.future = ""
		u.portNum = 0
	}
}

// userSpan returns the current stored user/pass/host/port bytes as a
// [4][]byte span, used as the base for a partial spliceAuthority edit.
func (u *Container) userSpan() [4][]byte {
	return [4][]byte{
		[]byte(u.userBytes()),
		[]byte(u.passBytes()),
		[]byte(u.hostBytes()),
		[]byte(u.portBytes()),
	}
}

// SetUser sets the username, percent-encoding any byte outside user-char.
func (u *Container) SetUser(raw string) error {
	return u.setUserEncoded(encodeComponent(raw, &tableUserChar))
}

// SetEncodedUser sets the username from an already-encoded string, failing
// if it is not valid user-char/pct-encoded text.
func (u *Container) SetEncodedUser(encoded string) error {
	if err := validateUserinfo(encoded); err != nil {
		return newParseError(err)
	}
	return u.setUserEncoded(encoded)
}

// SetUserPart sets the user subcomponent from delimiter-inclusive input:
// "" to drop the user (and, if nothing else keeps the authority alive, the
// authority itself), or the stored "//" authority marker followed by the
// encoded user text (e.g. "//alice"), per spec.md §4.4's layout table (the
// user component's stored prefix is "//", with the one documented exception
// that an authority with no userinfo still stores a bare "//").
func (u *Container) SetUserPart(part string) error {
	if part == "" {
		return u.SetEncodedUser("")
	}
	if !strings.HasPrefix(part, "//") {
		return newParseError(newKindError(KindInvalid, 0, "user-part must be empty or start with '//'"))
	}
	return u.SetEncodedUser(part[2:])
}

func (u *Container) setUserEncoded(encoded string) error {
	wasEmpty := u.userText() == "" && !u.hasAuthority()
	if wasEmpty && encoded != "" {
		u.ensureAuthority()
	}
	span := u.userSpan()
	if u.hasAuthority() {
		span[0] = []byte("//" + encoded)
	} else {
		span[0] = nil
	}
	if encoded != "" && len(span[1]) == 0 {
		span[1] = []byte("@")
	} else if encoded == "" && string(span[1]) == "@" {
		span[1] = nil
	}
	u.spliceAuthority(span)
	u.dropAuthorityIfEmpty()
	u.refreshDerived()
	return nil
}

// SetPassword sets the password, percent-encoding any byte outside
// pass-char. Passing "" with keep=true preserves the ':' separator with an
// empty password; keep=false removes the separator entirely.
func (u *Container) SetPassword(raw string, keep bool) error {
	return u.setPasswordEncoded(encodeComponent(raw, &tablePassChar), keep)
}

// SetEncodedPassword is the strict-validating counterpart of SetPassword.
func (u *Container) SetEncodedPassword(encoded string, keep bool) error {
	if err := validateUserinfo(encoded); err != nil {
		return newParseError(err)
	}
	return u.setPasswordEncoded(encoded, keep)
}

// SetPasswordPart sets the password from delimiter-inclusive input: "" to
// remove the ':' separator entirely, or the stored leading ':' followed by
// the encoded password (e.g. ":pw"), keeping an empty password separator
// when the part is the bare string ":". The trailing '@' is not part of
// this input — per spec.md §4.4 its presence also depends on whether user
// is non-empty, so SetEncodedPassword manages it the same way SetPassword
// does.
func (u *Container) SetPasswordPart(part string) error {
	switch {
	case part == "":
		return u.SetEncodedPassword("", false)
	case part[0] == ':':
		return u.SetEncodedPassword(part[1:], true)
	default:
		return newParseError(newKindError(KindInvalid, 0, "password-part must be empty or start with ':'"))
	}
}

func (u *Container) setPasswordEncoded(encoded string, keep bool) error {
	u.ensureAuthority()
	span := u.userSpan()
	switch {
	case keep || encoded != "":
		span[1] = []byte(":" + encoded + "@")
	default:
		if u.userText() != "" {
			span[1] = []byte("@")
		} else {
			span[1] = nil
		}
	}
	u.spliceAuthority(span)
	u.dropAuthorityIfEmpty()
	u.refreshDerived()
	return nil
}

// SetHost sets the host from raw text: bytes outside the reg-name alphabet
// are percent-encoded, then HostType is re-derived from the encoded text. A
// dotted-quad string therefore still becomes an IPv4 host, but the brackets
// of an IP-literal are encoded, so a bracketed IP-literal must be passed to
// SetEncodedHost instead.
//
// There is no SetHostPart: spec.md §4.4's stored-byte-layout table gives
// host neither a stored prefix nor suffix, so a delimiter-inclusive variant
// would take identical input to SetEncodedHost.
func (u *Container) SetHost(raw string) error {
	return u.setHostEncoded(encodeComponent(raw, &tableRegNameChar))
}

// SetEncodedHost sets the host from an already-encoded span (a reg-name, a
// dotted-quad IPv4 address, or a bracketed IP-literal), re-deriving HostType.
func (u *Container) SetEncodedHost(encoded string) error {
	return u.setHostEncoded(encoded)
}

func (u *Container) setHostEncoded(encoded string) error {
	info, err := parseHost(encoded)
	if err != nil {
		return newParseError(err)
	}
	u.ensureAuthority()
	span := u.userSpan()
	span[2] = []byte(encoded)
	u.spliceAuthority(span)

	if encoded == "" {
		info.kind = hostName
	}
	u.hostKind = info.kind
	u.ipAddr = [16]byte{}
	if info.kind == hostIPv4 {
		copy(u.ipAddr[:4], info.ipv4[:])
	} else if info.kind == hostIPv6 {
		u.ipAddr = info.ipv6
	}
	u.future = info.future
	u.dropAuthorityIfEmpty()
	u.refreshDerived()
	return nil
}

// SetPort sets the numeric port. Use SetEncodedPort/SetPortPart for a
// non-numeric-but-DIGIT-only port string (spec.md §9's open question resolves
// non-numeric-looking but grammar-valid "port" bytes, e.g. leading zeros, as
// acceptable here).
func (u *Container) SetPort(port uint16) error {
	return u.setPortEncoded(itoa(port))
}

// SetEncodedPort sets the port from a decimal-digit string, which need not
// be in 0..65535 (PortNumber then reports 0, per spec.md §7's BadPort note).
func (u *Container) SetEncodedPort(port string) error {
	if err := validatePort(port); err != nil {
		return newParseError(err)
	}
	return u.setPortEncoded(port)
}

// SetPortPart sets the port from delimiter-inclusive input: "" to remove
// the port entirely, or the stored leading ':' followed by the port's
// digits (e.g. ":8080"), per spec.md §4.4's layout table (the port
// component's stored prefix is ':'). spec.md §9's open question about
// SetPortPart(":abc") resolves the same way SetEncodedPort("abc") does:
// validatePort rejects the non-digit byte before any splice runs, so the
// call returns a KindInvalid error and the container is left unchanged.
func (u *Container) SetPortPart(part string) error {
	if part == "" {
		return u.SetEncodedPort("")
	}
	if part[0] != ':' {
		return newParseError(newKindError(KindInvalid, 0, "port-part must be empty or start with ':'"))
	}
	return u.SetEncodedPort(part[1:])
}

func (u *Container) setPortEncoded(port string) error {
	u.ensureAuthority()
	span := u.userSpan()
	if port == "" {
		span[3] = nil
	} else {
		span[3] = []byte(":" + port)
	}
	u.spliceAuthority(span)
	u.portNum = portNumber(port)
	u.dropAuthorityIfEmpty()
	u.refreshDerived()
	return nil
}

// itoa renders a uint16 as decimal digits without pulling in strconv, mirroring
// the teacher's preference for small hand-rolled numeric formatting helpers.
func itoa(v uint16) string {
	if v == 0 {
		return "0"
	}
	var buf [5]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	return string(buf[i:])
}

// SetPath sets the path, percent-encoding any byte outside path-char, then
// validating the result against the path style implied by the URL's current
// authority/scheme state (the same check SetEncodedPath performs).
//
// There is no SetPathPart: spec.md §4.4's stored-byte-layout table gives
// path neither a stored prefix nor suffix, so a delimiter-inclusive variant
// would take identical input to SetEncodedPath.
func (u *Container) SetPath(raw string) error {
	encoded := encodeComponent(raw, &tablePathChar)
	if err := validatePathChars(encoded, u.hasAuthority()); err != nil {
		return newParseError(err)
	}
	if err := validatePathStyle(encoded, u.hasAuthority(), u.schemeBytes() != ""); err != nil {
		return newParseError(err)
	}
	return u.setPathEncoded(encoded)
}

// SetEncodedPath sets the path from an already-encoded string, re-validating
// it against the path style implied by the URL's current authority/scheme
// state (spec.md §8 scenario 6: an authority-bearing URL rejects a
// non-absolute path).
func (u *Container) SetEncodedPath(encoded string) error {
	if err := validatePathChars(encoded, u.hasAuthority()); err != nil {
		return newParseError(err)
	}
	if err := validatePathStyle(encoded, u.hasAuthority(), u.schemeBytes() != ""); err != nil {
		return newParseError(err)
	}
	return u.setPathEncoded(encoded)
}

func (u *Container) setPathEncoded(encoded string) error {
	u.splice(compPath, []byte(encoded))
	u.refreshDerived()
	return nil
}

// SetQuery sets the raw query, percent-encoding any byte outside the query
// alphabet. Use ClearQuery to remove the query (and its '?') entirely.
func (u *Container) SetQuery(raw string) error {
	return u.setQueryEncoded(encodeComponent(raw, &tableQueryChar), true)
}

// SetEncodedQuery sets the already-encoded raw query.
func (u *Container) SetEncodedQuery(encoded string) error {
	if err := validateQueryChars(encoded); err != nil {
		return newParseError(err)
	}
	return u.setQueryEncoded(encoded, true)
}

// ClearQuery removes the query component, including its '?' delimiter.
func (u *Container) ClearQuery() error { return u.setQueryEncoded("", false) }

// SetQueryPart sets the query from delimiter-inclusive input: "" to remove
// the query entirely, or the stored leading '?' followed by the encoded
// query text (e.g. "?q=1"), per spec.md §4.4's layout table (the query
// component's stored prefix is '?').
func (u *Container) SetQueryPart(part string) error {
	if part == "" {
		return u.ClearQuery()
	}
	if part[0] != '?' {
		return newParseError(newKindError(KindInvalid, 0, "query-part must be empty or start with '?'"))
	}
	return u.SetEncodedQuery(part[1:])
}

func (u *Container) setQueryEncoded(encoded string, present bool) error {
	if !present {
		u.splice(compQuery, nil)
	} else {
		u.splice(compQuery, []byte("?"+encoded))
	}
	u.refreshDerived()
	return nil
}

// SetFragment sets the fragment, percent-encoding any byte outside the
// fragment alphabet. Use ClearFragment to remove it entirely.
func (u *Container) SetFragment(raw string) error {
	return u.setFragmentEncoded(encodeComponent(raw, &tableFragChar), true)
}

// SetEncodedFragment sets the already-encoded fragment.
func (u *Container) SetEncodedFragment(encoded string) error {
	if err := validateFragmentChars(encoded); err != nil {
		return newParseError(err)
	}
	return u.setFragmentEncoded(encoded, true)
}

// ClearFragment removes the fragment component, including its '#' delimiter.
func (u *Container) ClearFragment() error { return u.setFragmentEncoded("", false) }

// SetFragmentPart sets the fragment from delimiter-inclusive input: "" to
// remove the fragment entirely, or the stored leading '#' followed by the
// encoded fragment text (e.g. "#top"), per spec.md §4.4's layout table (the
// fragment component's stored prefix is '#').
func (u *Container) SetFragmentPart(part string) error {
	if part == "" {
		return u.ClearFragment()
	}
	if part[0] != '#' {
		return newParseError(newKindError(KindInvalid, 0, "fragment-part must be empty or start with '#'"))
	}
	return u.SetEncodedFragment(part[1:])
}

func (u *Container) setFragmentEncoded(encoded string, present bool) error {
	if !present {
		u.splice(compFragment, nil)
	} else {
		u.splice(compFragment, []byte("#"+encoded))
	}
	u.refreshDerived()
	return nil
}
