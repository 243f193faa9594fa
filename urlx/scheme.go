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

// scheme matches "ALPHA *( ALPHA / DIGIT / '+' / '-' / '.' )" and returns the
// matched text without the trailing ':'.
func scheme(c *cursor) (string, error) {
	start := c.mark()
	b, ok := c.peek()
	if !ok {
		return "", newKindError(KindNeedMore, start, "empty scheme")
	}
	if !isAlpha(b) {
		c.reset(start)
		return "", newKindErrorChar(KindBadScheme, start, "scheme must start with a letter", rune(b))
	}
	c.advance(1)
	for {
		d, ok := c.peek()
		if !ok || !isSchemeChar(d) {
			break
		}
		c.advance(1)
	}
	return c.s[start:c.mark()], nil
}
