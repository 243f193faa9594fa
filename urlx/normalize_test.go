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

func TestNormalizeScheme(t *testing.T) {
	u := mustParse(t, "HTTP://example.com/")
	u.NormalizeScheme()
	if u.Scheme() != "http" {
		t.Errorf("Scheme() = %q, want http", u.Scheme())
	}
}

func TestNormalizeFull(t *testing.T) {
	u := mustParse(t, "HTTP://example.com/%7ea/./b/../c?q=%7e#%7e")
	u.Normalize()
	want := "http://example.com/~a/c?q=~#~"
	if got := u.String(); got != want {
		t.Errorf("Normalize() => %q, want %q", got, want)
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	u := mustParse(t, "HTTP://example.com/a/../b?X=%2a#Frag")
	u.Normalize()
	once := u.String()
	u.Normalize()
	if u.String() != once {
		t.Errorf("second Normalize() changed the URL: %q => %q", once, u.String())
	}
}

func TestNormalizePreservesEmptyPasswordSeparator(t *testing.T) {
	u := mustParse(t, "http://user:@example.com/")
	u.Normalize()
	if got := u.String(); got != "http://user:@example.com/" {
		t.Errorf("Normalize() = %q, want unchanged structural separator", got)
	}
}
