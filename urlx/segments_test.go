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

func TestSegmentsAccessors(t *testing.T) {
	u := mustParse(t, "/a/b%20c/d")
	segs := u.PathSegments()
	if segs.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", segs.Len())
	}
	if got := segs.At(1); got != "b%20c" {
		t.Errorf("At(1) = %q, want b%%20c", got)
	}
	decoded, err := segs.DecodedAt(1)
	if err != nil {
		t.Fatalf("DecodedAt(1): %v", err)
	}
	if decoded != "b c" {
		t.Errorf("DecodedAt(1) = %q, want \"b c\"", decoded)
	}
	if got := segs.All(); !cmp.Equal(got, []string{"a", "b%20c", "d"}) {
		t.Errorf("All() = %v", got)
	}
}

func TestSegmentsInsert(t *testing.T) {
	u := mustParse(t, "/a/c")
	if err := u.PathSegments().Insert(1, "b"); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if u.Path() != "/a/b/c" {
		t.Errorf("Path() = %q, want /a/b/c", u.Path())
	}
	if u.NumSegments() != 3 {
		t.Errorf("NumSegments() = %d, want 3", u.NumSegments())
	}
}

func TestSegmentsReplace(t *testing.T) {
	u := mustParse(t, "/a/b/c")
	if err := u.PathSegments().Replace(1, "x y"); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if u.Path() != "/a/x%20y/c" {
		t.Errorf("Path() = %q, want /a/x%%20y/c", u.Path())
	}
}

func TestSegmentsEraseRange(t *testing.T) {
	u := mustParse(t, "/a/b/c/d")
	if err := u.PathSegments().EraseRange(1, 3); err != nil {
		t.Fatalf("EraseRange: %v", err)
	}
	if u.Path() != "/a/d" {
		t.Errorf("Path() = %q, want /a/d", u.Path())
	}
}

func TestSegmentsOutOfRange(t *testing.T) {
	u := mustParse(t, "/a/b")
	if err := u.PathSegments().Erase(5); err == nil {
		t.Error("Erase(5) should fail: out of range")
	}
	if err := u.PathSegments().Replace(-1, "x"); err == nil {
		t.Error("Replace(-1, ...) should fail: out of range")
	}
}

func TestSegmentsCommitRejectsNoschemeColon(t *testing.T) {
	u := mustParse(t, "a/b")
	if err := u.PathSegments().Replace(0, "x:y"); err == nil {
		t.Error("Replace into the first segment of a schemeless rootless path should reject a raw ':'")
	}
}
