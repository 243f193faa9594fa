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

// Package resolve implements RFC 3986 Section 5 reference resolution and its
// inverse, relativization, as a layer built entirely on top of the core
// urlx.Container's public accessor API — it never reaches into the
// container's internals, so it composes with, but stays outside, the core
// mutation algebra.
package resolve

import (
	"strings"

	"github.com/go-urlx/urlx/urlx"
)

// Resolve resolves ref against base per RFC 3986 Section 5.2 and returns the
// result as a new Container. base is never modified.
func Resolve(base *urlx.Container, ref string) (*urlx.Container, error) {
	refContainer, err := urlx.Parse(ref)
	if err != nil {
		return nil, err
	}
	return ResolveInto(base, refContainer)
}

// ResolveInto resolves an already-parsed reference against base, per RFC
// 3986 Section 5.2, and returns the result as a new Container. Neither
// argument is modified.
func ResolveInto(base, ref *urlx.Container) (*urlx.Container, error) {
	serialized := recompose(resolveComponents(base, ref))
	return urlx.Parse(serialized)
}

// resolved holds the five resolved-target components before recomposition,
// mirroring the teacher's resolvedIRI shape.
type resolved struct {
	scheme       string
	hasScheme    bool
	authority    string
	hasAuthority bool
	path         string
	query        string
	hasQuery     bool
	fragment     string
	hasFragment  bool
}

// resolveComponents implements RFC 3986 Section 5.2.2's component-wise
// resolution algorithm.
func resolveComponents(base, ref *urlx.Container) resolved {
	if ref.HasScheme() {
		return resolved{
			scheme: ref.Scheme(), hasScheme: true,
			authority: authorityOf(ref), hasAuthority: ref.HasAuthority(),
			path:        urlx.RemoveDotSegments(ref.Path()),
			query:       ref.Query(), hasQuery: ref.HasQuery(),
			fragment:    ref.Fragment(), hasFragment: ref.HasFragment(),
		}
	}

	t := resolved{
		scheme: base.Scheme(), hasScheme: base.HasScheme(),
		fragment: ref.Fragment(), hasFragment: ref.HasFragment(),
	}

	if ref.HasAuthority() {
		t.authority = authorityOf(ref)
		t.hasAuthority = true
		t.path = urlx.RemoveDotSegments(ref.Path())
		t.query = ref.Query()
		t.hasQuery = ref.HasQuery()
		return t
	}

	t.authority = authorityOf(base)
	t.hasAuthority = base.HasAuthority()
	resolvePathAndQuery(&t, base, ref)
	return t
}

// resolvePathAndQuery implements RFC 3986 Section 5.2.2's path/query branch.
func resolvePathAndQuery(t *resolved, base, ref *urlx.Container) {
	if ref.Path() != "" {
		if strings.HasPrefix(ref.Path(), "/") {
			t.path = urlx.RemoveDotSegments(ref.Path())
		} else {
			t.path = urlx.RemoveDotSegments(mergePaths(base, ref.Path()))
		}
		t.query = ref.Query()
		t.hasQuery = ref.HasQuery()
		return
	}
	t.path = base.Path()
	if ref.HasQuery() {
		t.query = ref.Query()
		t.hasQuery = true
	} else {
		t.query = base.Query()
		t.hasQuery = base.HasQuery()
	}
}

// mergePaths implements RFC 3986 Section 5.3's merge algorithm.
func mergePaths(base *urlx.Container, refPath string) string {
	basePath := base.Path()
	if base.HasAuthority() && basePath == "" {
		return "/" + refPath
	}
	i := strings.LastIndex(basePath, "/")
	if i == -1 {
		return refPath
	}
	return basePath[:i+1] + refPath
}

// authorityOf renders a Container's authority span (without the "//"
// prefix), mirroring the teacher's recomposeNormalizedIRI shape.
func authorityOf(u *urlx.Container) string {
	var b strings.Builder
	if ui := u.Userinfo(); ui != "" || u.HasPassword() {
		b.WriteString(ui)
		b.WriteByte('@')
	}
	b.WriteString(u.Host())
	if port := u.Port(); port != "" {
		b.WriteByte(':')
		b.WriteString(port)
	}
	return b.String()
}

// recompose assembles the final URI string from resolved components.
func recompose(t resolved) string {
	var b strings.Builder
	if t.hasScheme {
		b.WriteString(t.scheme)
		b.WriteByte(':')
	}
	if t.hasAuthority {
		b.WriteString("//")
		b.WriteString(t.authority)
	}
	b.WriteString(t.path)
	if t.hasQuery {
		b.WriteByte('?')
		b.WriteString(t.query)
	}
	if t.hasFragment {
		b.WriteByte('#')
		b.WriteString(t.fragment)
	}
	return b.String()
}
