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

import "testing"

func TestIPv4Address(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    [4]byte
		wantErr bool
	}{
		{"simple", "1.2.3.4", [4]byte{1, 2, 3, 4}, false},
		{"leading zero rejected", "01.2.3.4", [4]byte{}, true},
		{"single digit zero ok", "0.0.0.0", [4]byte{0, 0, 0, 0}, false},
		{"octet 256 rejected", "256.1.1.1", [4]byte{}, true},
		{"octet 255 ok", "255.255.255.255", [4]byte{255, 255, 255, 255}, false},
		{"too few octets", "1.2.3", [4]byte{}, true},
		{"trailing garbage not consumed", "1.2.3.4x", [4]byte{1, 2, 3, 4}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := newCursor(tc.input)
			got, err := ipv4Address(c)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ipv4Address(%q) error = %v, wantErr %v", tc.input, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("ipv4Address(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestDecOctetLeadingZero(t *testing.T) {
	c := newCursor("00")
	if _, err := decOctet(c); err == nil {
		t.Error("decOctet(\"00\") should reject leading zero on multi-digit value")
	}
	c = newCursor("0")
	if _, err := decOctet(c); err != nil {
		t.Error("decOctet(\"0\") should accept a single zero digit")
	}
}
