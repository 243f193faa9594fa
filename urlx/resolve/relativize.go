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

package resolve

import (
	"strings"

	"github.com/go-urlx/urlx/urlx"
)

// Relativize computes the shortest relative reference that resolves to
// target when resolved against base, per the inverse of RFC 3986 Section
// 5.2. When base and target do not share a scheme (or authority, when either
// has one), the only safe reference is the full absolute target, which is
// returned unchanged.
func Relativize(base, target *urlx.Container) (*urlx.Container, error) {
	if base.Scheme() != target.Scheme() || !base.HasScheme() {
		return urlx.Parse(target.String())
	}
	if base.HasAuthority() != target.HasAuthority() {
		return urlx.Parse(target.String())
	}
	if base.HasAuthority() && authorityOf(base) != authorityOf(target) {
		return urlx.Parse(target.String())
	}

	if base.Path() == target.Path() {
		return relativizeSamePath(base, target)
	}
	if base.HasAuthority() {
		return relativizeWithAuthority(base, target)
	}
	return relativizeNoAuthority(base, target)
}

// relativizeSamePath handles the case where base and target share a path,
// so only the query/fragment differ.
func relativizeSamePath(base, target *urlx.Container) (*urlx.Container, error) {
	if base.Query() == target.Query() && base.HasQuery() == target.HasQuery() {
		if target.HasFragment() {
			return urlx.Parse("#" + target.Fragment())
		}
		return urlx.Parse("")
	}
	if !target.HasQuery() && base.HasQuery() {
		relPath := lastSegment(target.Path())
		if relPath == "" {
			relPath = "."
		}
		return buildRelativeRef(relPath, target)
	}
	return buildRelativeRef("", target)
}

// relativizeWithAuthority handles the case where both URLs have an
// authority, walking up from base's directory to the common ancestor and
// back down to target's path.
func relativizeWithAuthority(base, target *urlx.Container) (*urlx.Container, error) {
	basePath, targetPath := base.Path(), target.Path()
	if basePath == "" {
		basePath = "/"
	}
	if targetPath == "" {
		targetPath = "/"
	}
	relPath := relativePath(directoryOf(basePath), targetPath)
	if relPath == "" {
		if strings.HasSuffix(targetPath, "/") {
			relPath = "."
		}
	}
	return buildRelativeRef(relPath, target)
}

// relativizeNoAuthority mirrors relativizeWithAuthority for authority-less
// URLs, additionally guarding against the relative path's first segment
// looking like a scheme (spec.md §4.3's path-noscheme ':' restriction).
func relativizeNoAuthority(base, target *urlx.Container) (*urlx.Container, error) {
	relPath := relativePath(directoryOf(base.Path()), target.Path())
	if relPath == "" && base.Path() != target.Path() {
		relPath = "."
	}
	if !strings.HasPrefix(relPath, ".") && !strings.HasPrefix(relPath, "/") {
		if firstColon := strings.IndexByte(relPath, ':'); firstColon != -1 {
			firstSlash := strings.IndexByte(relPath, '/')
			if firstSlash == -1 || firstColon < firstSlash {
				relPath = "./" + relPath
			}
		}
	}
	return buildRelativeRef(relPath, target)
}

// directoryOf returns the path up to and including its last '/'.
func directoryOf(path string) string {
	i := strings.LastIndex(path, "/")
	if i == -1 {
		return ""
	}
	return path[:i+1]
}

// lastSegment returns the text after the path's last '/'.
func lastSegment(path string) string {
	i := strings.LastIndex(path, "/")
	return path[i+1:]
}

// relativePath computes a "../"-prefixed relative path from baseDir to
// targetPath by walking up past baseDir's non-common segments and appending
// targetPath's remaining segments.
func relativePath(baseDir, targetPath string) string {
	baseSegs := splitDir(baseDir)
	targetSegs := strings.Split(strings.TrimPrefix(targetPath, "/"), "/")
	if targetPath == "/" {
		targetSegs = nil
	}

	common := 0
	for common < len(baseSegs) && common < len(targetSegs) && baseSegs[common] == targetSegs[common] {
		common++
	}

	var b strings.Builder
	for i := common; i < len(baseSegs); i++ {
		b.WriteString("../")
	}
	b.WriteString(strings.Join(targetSegs[common:], "/"))
	return b.String()
}

// splitDir splits a directory path (ending in '/', or empty for root) into
// its non-empty segments.
func splitDir(dir string) []string {
	trimmed := strings.Trim(dir, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// buildRelativeRef assembles the final relative reference from relPath plus
// target's query and fragment.
func buildRelativeRef(relPath string, target *urlx.Container) (*urlx.Container, error) {
	var b strings.Builder
	b.WriteString(relPath)
	if target.HasQuery() {
		b.WriteByte('?')
		b.WriteString(target.Query())
	}
	if target.HasFragment() {
		b.WriteByte('#')
		b.WriteString(target.Fragment())
	}
	return urlx.Parse(b.String())
}
