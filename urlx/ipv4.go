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

// decOctet matches 1-3 digits whose numeric value is 0-255, rejecting a
// leading zero on a multi-digit value (so "01" is invalid but "0" is valid).
func decOctet(c *cursor) (byte, error) {
	start := c.mark()
	var digits []byte
	for len(digits) < 3 {
		b, ok := c.peek()
		if !ok || !isDigit(b) {
			break
		}
		digits = append(digits, b)
		c.advance(1)
	}
	if len(digits) == 0 {
		c.reset(start)
		return 0, newKindError(KindMismatch, start, "expected decimal octet")
	}
	if len(digits) > 1 && digits[0] == '0' {
		c.reset(start)
		return 0, newKindError(KindInvalid, start, "decimal octet has leading zero")
	}
	v := 0
	for _, d := range digits {
		v = v*10 + int(d-'0')
	}
	if v > 255 {
		c.reset(start)
		return 0, newKindError(KindInvalid, start, "decimal octet exceeds 255")
	}
	return byte(v), nil
}

// ipv4Address matches "dec-octet '.' dec-octet '.' dec-octet '.' dec-octet"
// and returns the address as 4 big-endian bytes.
func ipv4Address(c *cursor) ([4]byte, error) {
	start := c.mark()
	var out [4]byte
	for i := 0; i < 4; i++ {
		if i > 0 {
			if err := literal('.')(c); err != nil {
				c.reset(start)
				return out, newKindError(KindMismatch, start, "expected '.' in IPv4 address")
			}
		}
		b, err := decOctet(c)
		if err != nil {
			c.reset(start)
			return out, err
		}
		out[i] = b
	}
	return out, nil
}

// matchIPv4Address is the matcher-shaped wrapper used by alt()/seq() callers
// that only need pass/fail, discarding the decoded address.
func matchIPv4Address(c *cursor) error {
	_, err := ipv4Address(c)
	return err
}
