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

// cursor is a byte-oriented reader over a fixed input string. It implements
// the "no-consume-on-failure" rule required by the L2 combinators: peek never
// advances, and next/advance only move forward on success.
type cursor struct {
	s   string
	pos int
}

func newCursor(s string) *cursor {
	return &cursor{s: s}
}

// peek returns the next byte without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.s) {
		return 0, false
	}
	return c.s[c.pos], true
}

// peekAt returns the byte at offset n bytes ahead of the cursor, without consuming.
func (c *cursor) peekAt(n int) (byte, bool) {
	if c.pos+n >= len(c.s) {
		return 0, false
	}
	return c.s[c.pos+n], true
}

// next consumes and returns the next byte.
func (c *cursor) next() (byte, bool) {
	b, ok := c.peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// advance consumes n bytes unconditionally; callers must have checked bounds.
func (c *cursor) advance(n int) {
	c.pos += n
}

// startsWith reports whether the unread input begins with b.
func (c *cursor) startsWith(b byte) bool {
	peeked, ok := c.peek()
	return ok && peeked == b
}

// rest returns the unread portion of the input.
func (c *cursor) rest() string {
	return c.s[c.pos:]
}

// position returns the current byte offset from the start of the input.
func (c *cursor) position() int {
	return c.pos
}

// atEnd reports whether the cursor has consumed the entire input.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.s)
}

// mark/reset let a matcher backtrack to a saved position, used by alt().
func (c *cursor) mark() int     { return c.pos }
func (c *cursor) reset(pos int) { c.pos = pos }
