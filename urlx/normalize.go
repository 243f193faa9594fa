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

import "strings"

// NormalizeScheme lower-cases the scheme component in place, per spec.md
// §4.5.
func (u *Container) NormalizeScheme() {
	name := u.Scheme()
	lower := strings.ToLower(name)
	if lower == name {
		return
	}
	u.splice(compScheme, []byte(lower+":"))
	u.refreshDerived()
}

// Normalize performs the full RFC 3986 normalization pass: lower-case the
// scheme, upper-case %HH hex digits, decode %HH where the decoded byte is
// unreserved, and remove-dot-segments on the path. Per spec.md §8's
// idempotence property, Normalize(Normalize(u)) leaves u unchanged.
func (u *Container) Normalize() {
	u.NormalizeScheme()

	u.splice(compUser, []byte(normalizePercentEncoding(u.userBytes())))
	u.splice(compPass, []byte(normalizePassComponent(u.passBytes())))
	if u.hostKind == hostName {
		u.splice(compHost, []byte(normalizePercentEncoding(u.hostBytes())))
	}
	u.splice(compPath, []byte(normalizePercentEncoding(removeDotSegments(u.pathBytes()))))
	u.splice(compQuery, []byte(normalizeDelimited(u.queryBytes(), '?')))
	u.splice(compFragment, []byte(normalizeDelimited(u.fragmentBytes(), '#')))

	u.refreshDerived()
}

// normalizePassComponent normalizes the percent-encoding inside a stored
// pass span while leaving its structural ':'/'@' delimiters untouched.
func normalizePassComponent(pass string) string {
	if pass == "" {
		return ""
	}
	if pass == "@" {
		return "@"
	}
	inner := strings.TrimSuffix(strings.TrimPrefix(pass, ":"), "@")
	return ":" + normalizePercentEncoding(inner) + "@"
}

// normalizeDelimited normalizes the percent-encoding inside a stored
// query/fragment span while leaving its leading delimiter byte untouched.
func normalizeDelimited(s string, delim byte) string {
	if s == "" {
		return ""
	}
	return string(delim) + normalizePercentEncoding(s[1:])
}
