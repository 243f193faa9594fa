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

// Segments is a view over the path component's segments. It is invalidated
// by any subsequent mutation of the owning Container — per spec.md §9, any
// mutator invalidates all outstanding views, and this type carries no
// protection against that; callers must re-acquire a Segments after editing.
type Segments struct {
	u *Container
}

// PathSegments returns a Segments view over u's current path.
func (u *Container) PathSegments() Segments { return Segments{u: u} }

// Len returns the number of path segments, matching the cached nseg field.
func (s Segments) Len() int { return s.u.nseg }

// At returns the encoded text of the segment at pos.
func (s Segments) At(pos int) string {
	segs := pathSegments(s.u.pathBytes())
	return segs[pos]
}

// DecodedAt percent-decodes the segment at pos.
func (s Segments) DecodedAt(pos int) (string, error) {
	return decodeComponent(s.At(pos), true)
}

// All returns every segment's encoded text, in order.
func (s Segments) All() []string { return pathSegments(s.u.pathBytes()) }

// Insert adds raw (percent-encoded as needed) as a new segment before pos.
func (s Segments) Insert(pos int, raw string) error {
	return s.InsertEncoded(pos, encodeSegment(raw))
}

// encodeSegment percent-encodes a raw segment with the path alphabet minus
// '/', so the text stays a single segment.
func encodeSegment(raw string) string {
	allowed := tablePathChar
	allowed['/'] = false
	return encodeComponent(raw, &allowed)
}

// InsertEncoded adds an already-encoded segment before pos.
func (s Segments) InsertEncoded(pos int, encoded string) error {
	if err := validatePathChars(encoded, false); err != nil {
		return newParseError(err)
	}
	segs := pathSegments(s.u.pathBytes())
	if pos < 0 || pos > len(segs) {
		return newParseError(newKindError(KindInvalid, 0, "segment insert position out of range"))
	}
	segs = append(segs[:pos:pos], append([]string{encoded}, segs[pos:]...)...)
	return s.commit(segs)
}

// Replace overwrites the segment at pos with raw (percent-encoded as needed).
func (s Segments) Replace(pos int, raw string) error {
	return s.ReplaceEncoded(pos, encodeSegment(raw))
}

// ReplaceEncoded overwrites the segment at pos with an already-encoded value.
func (s Segments) ReplaceEncoded(pos int, encoded string) error {
	if err := validatePathChars(encoded, false); err != nil {
		return newParseError(err)
	}
	segs := pathSegments(s.u.pathBytes())
	if pos < 0 || pos >= len(segs) {
		return newParseError(newKindError(KindInvalid, 0, "segment replace position out of range"))
	}
	segs[pos] = encoded
	return s.commit(segs)
}

// Erase removes the segment at pos.
func (s Segments) Erase(pos int) error {
	segs := pathSegments(s.u.pathBytes())
	if pos < 0 || pos >= len(segs) {
		return newParseError(newKindError(KindInvalid, 0, "segment erase position out of range"))
	}
	segs = append(segs[:pos], segs[pos+1:]...)
	return s.commit(segs)
}

// EraseRange removes the half-open range of segments [from, to).
func (s Segments) EraseRange(from, to int) error {
	segs := pathSegments(s.u.pathBytes())
	if from < 0 || to > len(segs) || from > to {
		return newParseError(newKindError(KindInvalid, 0, "segment erase range out of range"))
	}
	segs = append(segs[:from], segs[to:]...)
	return s.commit(segs)
}

// commit rebuilds the path from segs, preserving absoluteness, and splices
// it into the owning Container's path component.
func (s Segments) commit(segs []string) error {
	absolute := strings.HasPrefix(s.u.pathBytes(), "/")
	newPath := joinSegments(segs, absolute)
	if err := validatePathStyle(newPath, s.u.hasAuthority(), s.u.schemeBytes() != ""); err != nil {
		return newParseError(err)
	}
	s.u.splice(compPath, []byte(newPath))
	s.u.refreshDerived()
	return nil
}
