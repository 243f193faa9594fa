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

func TestValidatePathStyle(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		hasAuthority bool
		hasScheme    bool
		wantErr      bool
	}{
		{"abempty ok", "/a/b", true, true, false},
		{"abempty must start with slash", "a/b", true, true, true},
		{"abempty empty ok", "", true, true, false},
		{"rootless with scheme ok", "a/b", false, true, false},
		{"noscheme first segment has colon", "a:b", false, false, true},
		{"noscheme first segment ok", "a/b:c", false, false, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePathStyle(tc.path, tc.hasAuthority, tc.hasScheme)
			if (err != nil) != tc.wantErr {
				t.Errorf("validatePathStyle(%q, %v, %v) error = %v, wantErr %v",
					tc.path, tc.hasAuthority, tc.hasScheme, err, tc.wantErr)
			}
		})
	}
}

func TestCountSegments(t *testing.T) {
	tests := []struct {
		path string
		want int
	}{
		{"", 0},
		{"/a/b", 2},
		{"a/b", 2},
		{"/", 1},
		{"a", 1},
	}
	for _, tc := range tests {
		if got := countSegments(tc.path); got != tc.want {
			t.Errorf("countSegments(%q) = %d, want %d", tc.path, got, tc.want)
		}
	}
}

func TestRemoveDotSegments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"rfc example 1", "/a/b/c/./../../g", "/a/g"},
		{"rfc example 2", "mid/content=5/../6", "mid/6"},
		{"single dot", "/a/./b", "/a/b"},
		{"double dot at root", "/../a", "/a"},
		{"trailing dot dot", "/a/b/..", "/a/"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := removeDotSegments(tc.input); got != tc.want {
				t.Errorf("removeDotSegments(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestJoinSegments(t *testing.T) {
	if got := joinSegments([]string{"a", "b"}, true); got != "/a/b" {
		t.Errorf("joinSegments absolute = %q, want /a/b", got)
	}
	if got := joinSegments([]string{"a", "b"}, false); got != "a/b" {
		t.Errorf("joinSegments relative = %q, want a/b", got)
	}
}
