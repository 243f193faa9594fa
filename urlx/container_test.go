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

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *Container {
	t.Helper()
	u, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", s, err)
	}
	return u
}

// TestParseFullURL covers spec.md §8 scenario 1.
func TestParseFullURL(t *testing.T) {
	u := mustParse(t, "http://user:pw@example.com:8080/a/b?x=1&y=2#f")

	if got := u.Scheme(); got != "http" {
		t.Errorf("Scheme() = %q, want http", got)
	}
	if got := u.User(); got != "user" {
		t.Errorf("User() = %q, want user", got)
	}
	if got := u.Password(); got != "pw" {
		t.Errorf("Password() = %q, want pw", got)
	}
	if got := u.Host(); got != "example.com" {
		t.Errorf("Host() = %q, want example.com", got)
	}
	if u.HostType() != HostName {
		t.Errorf("HostType() = %v, want HostName", u.HostType())
	}
	if got := u.PortNumber(); got != 8080 {
		t.Errorf("PortNumber() = %d, want 8080", got)
	}
	if got := u.PathSegments().All(); !cmp.Equal(got, []string{"a", "b"}) {
		t.Errorf("path segments = %v, want [a b]", got)
	}
	params := u.QueryParams().All()
	want := []queryParam{
		{Key: "x", Value: "1", HasValue: true},
		{Key: "y", Value: "2", HasValue: true},
	}
	if !cmp.Equal(params, want) {
		t.Errorf("query params diff:\n%s", cmp.Diff(params, want))
	}
	if got := u.Fragment(); got != "f" {
		t.Errorf("Fragment() = %q, want f", got)
	}
	if u.String() != "http://user:pw@example.com:8080/a/b?x=1&y=2#f" {
		t.Errorf("String() = %q", u.String())
	}
}

// TestBuildThenNormalizeScheme covers spec.md §8 scenario 2.
func TestBuildThenNormalizeScheme(t *testing.T) {
	u := New()
	if err := u.SetScheme("HTTPS"); err != nil {
		t.Fatalf("SetScheme: %v", err)
	}
	if err := u.SetHost("example.com"); err != nil {
		t.Fatalf("SetHost: %v", err)
	}
	if err := u.SetPath("/x y"); err != nil {
		t.Fatalf("SetPath: %v", err)
	}
	if got := u.String(); got != "HTTPS://example.com/x%20y" {
		t.Fatalf("String() after build = %q, want HTTPS://example.com/x%%20y", got)
	}
	u.NormalizeScheme()
	if got := u.String(); got != "https://example.com/x%20y" {
		t.Errorf("String() after NormalizeScheme = %q, want https://example.com/x%%20y", got)
	}
}

// TestParseIPv6Host covers spec.md §8 scenario 3.
func TestParseIPv6Host(t *testing.T) {
	u := mustParse(t, "foo://[2001:db8::1]:80")
	addr, ok := u.IPv6Address()
	if !ok {
		t.Fatal("IPv6Address() ok = false, want true")
	}
	want := [16]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}
	if !cmp.Equal(addr, want) {
		t.Errorf("IPv6Address() diff:\n%s", cmp.Diff(addr, want))
	}
}

// TestPathSegmentErase covers spec.md §8 scenario 4.
func TestPathSegmentErase(t *testing.T) {
	u := mustParse(t, "a/b/c")
	if err := u.PathSegments().Erase(1); err != nil {
		t.Fatalf("Erase(1): %v", err)
	}
	if got := u.String(); got != "a/c" {
		t.Errorf("String() after erase = %q, want a/c", got)
	}
	if u.NumSegments() != 2 {
		t.Errorf("NumSegments() = %d, want 2", u.NumSegments())
	}
}

// TestQueryParamsCount covers spec.md §8 scenario 5.
func TestQueryParamsCount(t *testing.T) {
	u := mustParse(t, "?a=1&a=2&b=")
	if got := u.QueryParams().Count("a"); got != 2 {
		t.Errorf("Count(\"a\") = %d, want 2", got)
	}
	v, ok := u.QueryParams().Get("b")
	if !ok || v != "" {
		t.Errorf("Get(\"b\") = (%q, %v), want (\"\", true)", v, ok)
	}
}

// TestSetEncodedPathRejectsNonAbsolute covers spec.md §8 scenario 6.
func TestSetEncodedPathRejectsNonAbsolute(t *testing.T) {
	u := mustParse(t, "http://x")
	before := u.String()
	err := u.SetEncodedPath("not/absolute")
	if err == nil {
		t.Fatal("SetEncodedPath(\"not/absolute\") should fail when an authority is present")
	}
	if u.String() != before {
		t.Errorf("URL changed after failed setter: got %q, want unchanged %q", u.String(), before)
	}
}

func TestBoundaryCases(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"scheme only", "x:"},
		{"authority only", "//host"},
		{"fragment only", "#f"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := mustParse(t, tc.input)
			if u.String() != tc.input {
				t.Errorf("round-trip %q => %q", tc.input, u.String())
			}
		})
	}
}

func TestEmptyAuthorityHost(t *testing.T) {
	u := mustParse(t, "///path")
	if !u.HasAuthority() {
		t.Error("HasAuthority() should be true for \"///path\" per the empty-authority open question")
	}
	if u.HostType() != HostName || u.Host() != "" {
		t.Errorf("HostType/Host = %v/%q, want HostName/\"\"", u.HostType(), u.Host())
	}
}

func TestPercentEscapeAtBufferEnd(t *testing.T) {
	tests := []string{"%", "%1"}
	for _, input := range tests {
		if _, err := Parse("/" + input); err == nil {
			t.Errorf("Parse(%q) should fail with BadPercentEscape", input)
		} else if pe, ok := err.(*ParseError); !ok || pe.Kind != KindBadPercentEscape {
			t.Errorf("Parse(%q) err = %v, want KindBadPercentEscape", input, err)
		}
	}
}

func TestClear(t *testing.T) {
	u := mustParse(t, "http://example.com/a?b#c")
	u.Clear()
	if u.String() != "" || u.Len() != 0 || u.HasAuthority() {
		t.Errorf("Clear() left non-empty state: %q", u.String())
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"http://user:pw@example.com:8080/a/b?x=1&y=2#f",
		"mailto:x@y.com",
		"//example.com/path",
		"a/b/c",
		"urn:isbn:0451450523",
	}
	for _, in := range inputs {
		u := mustParse(t, in)
		u2 := mustParse(t, u.String())
		if u.String() != u2.String() {
			t.Errorf("round-trip mismatch for %q: %q vs %q", in, u.String(), u2.String())
		}
	}
}
