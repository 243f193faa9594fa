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

// Container is a modifiable URL that owns a single contiguous,
// null-terminated serialized byte string and a fixed-arity index into its
// eight components, per spec.md §3.
type Container struct {
	buf ownedBuffer
	// offset[i] is the start byte of component i; offset[compEnd] is the
	// total serialized length.
	offset [compEnd + 1]int

	hostKind hostKind
	ipAddr   [16]byte // ipv4 uses the first 4 bytes; ipv6 uses all 16
	future   string   // raw "vX.addr" text when hostKind == hostIPvFuture
	portNum  uint16

	nseg   int
	nparam int

	// decoded[c] caches the length component c would occupy after full
	// percent-decoding, indexed by component (scheme..fragment).
	decoded [compFragment + 1]int
}

// New returns an empty Container: every component has length zero, host_kind
// is hostNone, and the serialized form is the empty string.
func New() *Container {
	return &Container{buf: newOwnedBuffer("")}
}

// Parse parses s as a URI-reference and returns the resulting Container.
// On failure it returns a *ParseError reporting the first failing byte
// offset and kind; no partial state is returned.
func Parse(s string) (*Container, error) {
	idx, err := parseURIReference(s)
	if err != nil {
		return nil, newParseError(err)
	}
	u := &Container{
		buf:      newOwnedBuffer(s),
		offset:   idx.offset,
		hostKind: idx.host.kind,
		portNum:  idx.port,
		future:   idx.host.future,
	}
	if idx.host.kind == hostIPv4 {
		copy(u.ipAddr[:4], idx.host.ipv4[:])
	} else if idx.host.kind == hostIPv6 {
		u.ipAddr = idx.host.ipv6
	}
	u.refreshDerived()
	return u, nil
}

// refreshDerived recomputes nseg, nparam, and the per-component decoded-byte
// counts from the current buffer contents. Every setter and the parse
// constructor call this after committing a change (spec.md §4.4 step 4).
func (u *Container) refreshDerived() {
	u.nseg = countSegments(u.pathBytes())
	u.nparam = len(splitQueryParams(u.Query()))
	for c := compScheme; c <= compFragment; c++ {
		u.decoded[c] = decodedLen(u.componentString(c))
	}
}

// componentString returns the stored (encoded) bytes of component c as a string.
func (u *Container) componentString(c component) string {
	return u.buf.stringAt(u.offset[c], u.offset[c+1])
}

func (u *Container) schemeBytes() string   { return u.componentString(compScheme) }
func (u *Container) userBytes() string     { return u.componentString(compUser) }
func (u *Container) passBytes() string     { return u.componentString(compPass) }
func (u *Container) hostBytes() string     { return u.componentString(compHost) }
func (u *Container) portBytes() string     { return u.componentString(compPort) }
func (u *Container) pathBytes() string     { return u.componentString(compPath) }
func (u *Container) queryBytes() string    { return u.componentString(compQuery) }
func (u *Container) fragmentBytes() string { return u.componentString(compFragment) }

// hasAuthority reports whether the "//" prefix is present. hostKind is
// hostNone if and only if there is no authority at all (spec.md §3's one
// exception: an empty authority with no userinfo, e.g. "///path", still has
// the "//" prefix and is represented as hostKind == hostName with an empty
// host).
func (u *Container) hasAuthority() bool {
	return u.hostKind != hostNone
}

// String returns the serialized URL: the buffer bytes from the start of the
// scheme component to the end of the fragment component.
func (u *Container) String() string {
	return u.buf.stringAt(u.offset[compScheme], u.offset[compEnd])
}

// Len returns the length in bytes of the serialized URL.
func (u *Container) Len() int { return u.offset[compEnd] }

// Clear logically empties the URL, retaining the buffer's capacity.
func (u *Container) Clear() {
	u.buf.splice(0, u.offset[compEnd], nil)
	for i := range u.offset {
		u.offset[i] = 0
	}
	u.hostKind = hostNone
	u.ipAddr = [16]byte{}
	u.future = ""
	u.portNum = 0
	u.nseg = 0
	u.nparam = 0
	u.decoded = [compFragment + 1]int{}
}

// splice is the Container-level wrapper around ownedBuffer.splice: it
// replaces the bytes of a single component (first, first+1) with newBytes
// and shifts every following component boundary by the resulting delta.
func (u *Container) splice(first component, newBytes []byte) {
	oldStart, oldEnd := u.offset[first], u.offset[first+1]
	delta := u.buf.splice(oldStart, oldEnd, newBytes)
	for i := first + 1; i <= compEnd; i++ {
		u.offset[i] += delta
	}
}

// spliceAuthority replaces the combined user+pass+host+port span in one
// operation, used by setters that add or remove the authority as a whole
// (e.g. SetHost on an authority-less URL, or clearing every authority
// subcomponent at once). newSpans must contain exactly the four component
// byte strings in order: user, pass, host, port.
func (u *Container) spliceAuthority(newSpans [4][]byte) {
	var combined []byte
	for _, s := range newSpans {
		combined = append(combined, s...)
	}
	oldStart, oldEnd := u.offset[compUser], u.offset[compPort+1]
	delta := u.buf.splice(oldStart, oldEnd, combined)

	pos := oldStart
	u.offset[compUser] = pos
	pos += len(newSpans[0])
	u.offset[compPass] = pos
	pos += len(newSpans[1])
	u.offset[compHost] = pos
	pos += len(newSpans[2])
	u.offset[compPort] = pos
	pos += len(newSpans[3])
	u.offset[compPath] = pos // offset[compPort+1] == offset[compPath]

	for i := compQuery; i <= compEnd; i++ {
		u.offset[i] += delta
	}
}
