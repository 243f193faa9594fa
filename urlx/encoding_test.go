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

func TestEncodeComponent(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"all allowed", "abc-_.~", "abc-_.~"},
		{"space encoded", "x y", "x%20y"},
		{"slash encoded for path-char alphabet mismatch", "a/b", "a%2Fb"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := encodeComponent(tc.raw, &tableUserChar); got != tc.want {
				t.Errorf("encodeComponent(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestDecodeComponent(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
		check   bool
		want    string
		wantErr bool
	}{
		{"plain", "abc", true, "abc", false},
		{"escape", "x%20y", true, "x y", false},
		{"bad escape checked", "x%2y", true, "", true},
		{"bad escape unchecked", "x%2y", false, "x%2y", false},
		{"escape at end", "x%", true, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := decodeComponent(tc.encoded, tc.check)
			if (err != nil) != tc.wantErr {
				t.Fatalf("decodeComponent(%q) error = %v, wantErr %v", tc.encoded, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("decodeComponent(%q) = %q, want %q", tc.encoded, got, tc.want)
			}
		})
	}
}

func TestDecodedLen(t *testing.T) {
	tests := []struct {
		encoded string
		want    int
	}{
		{"abc", 3},
		{"%20", 1},
		{"a%20b", 3},
		{"%2", 2},  // malformed, not counted
		{"100%", 4}, // trailing '%' with nothing after, not counted
	}
	for _, tc := range tests {
		if got := decodedLen(tc.encoded); got != tc.want {
			t.Errorf("decodedLen(%q) = %d, want %d", tc.encoded, got, tc.want)
		}
	}
}

func TestNormalizePercentEncoding(t *testing.T) {
	tests := []struct {
		encoded string
		want    string
	}{
		{"%2f", "%2F"},     // '/' is not unreserved, stays encoded but upper-cased
		{"%41", "A"},       // 'A' is unreserved, decoded
		{"%7e", "~"},       // '~' is unreserved, decoded
		{"abc", "abc"},
		{"100%", "100%"},
	}
	for _, tc := range tests {
		if got := normalizePercentEncoding(tc.encoded); got != tc.want {
			t.Errorf("normalizePercentEncoding(%q) = %q, want %q", tc.encoded, got, tc.want)
		}
	}
}
