// Package utils holds path and error helpers shared by storage backends.
package utils

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/c2fo/storages"
)

// regex to test whether the last character is a '/'
var hasTrailingSlash = regexp.MustCompile("/$")

// regex to test whether the first character is a '/'
var hasLeadingSlash = regexp.MustCompile("^/")

// RemoveTrailingSlash removes trailing slash, if any
func RemoveTrailingSlash(p string) string {
	return strings.TrimRight(p, "/")
}

// RemoveLeadingSlash removes leading slash, if any
func RemoveLeadingSlash(p string) string {
	return strings.TrimLeft(p, "/")
}

// EnsureTrailingSlash adds a trailing slash if there isn't one. Only ever uses / since storage keys are never Windows
// OS paths.
func EnsureTrailingSlash(dir string) string {
	if hasTrailingSlash.MatchString(dir) {
		return dir
	}
	return dir + "/"
}

// EnsureLeadingSlash is like EnsureTrailingSlash except that it adds the leading slash if needed.
func EnsureLeadingSlash(dir string) string {
	if hasLeadingSlash.MatchString(dir) {
		return dir
	}
	return "/" + dir
}

// ToSlash replaces every backslash in name with a forward slash.
func ToSlash(name string) string {
	return strings.ReplaceAll(name, "\\", "/")
}

// CleanRoot normalizes a storage root to either "" (the service root) or an absolute path without a trailing slash,
// ie: "media/", "\media" and "/media" all become "/media".
func CleanRoot(root string) string {
	root = RemoveTrailingSlash(ToSlash(root))
	if root == "" {
		return ""
	}
	return EnsureLeadingSlash(root)
}

// JoinRoot returns "{root}/{name}" with backslashes in name replaced by forward slashes. No other cleaning is applied.
func JoinRoot(root, name string) string {
	return root + "/" + ToSlash(name)
}

// RootedPath maps name onto a cleaned path under root. A name that already carries root has it stripped first, and
// the rest is cleaned as a rooted path, so ".." segments stop at root instead of climbing out of it, ie: with root
// "/media", "../a.txt", "/media/../a.txt" and `x\..\a.txt` all become "/media/a.txt".
func RootedPath(root, name string) string {
	rel := ToSlash(name)
	if HasRoot(root, rel) {
		rel = rel[len(root):]
	}

	rel = path.Clean("/" + rel)
	if rel == "/" && root != "" {
		return root
	}
	return root + rel
}

// HasRoot reports whether p is root itself or lies beneath it.
func HasRoot(root, p string) bool {
	if root == "" {
		return strings.HasPrefix(p, "/")
	}
	return p == root || strings.HasPrefix(p, root+"/")
}

// SplitExt splits the base name of p on its last '.' and returns everything before it (directory included) and the
// extension without the dot. ok is false when the base name has no '.'.
func SplitExt(p string) (stem, ext string, ok bool) {
	if p == "" || strings.HasSuffix(p, "/") {
		return p, "", false
	}

	base := path.Base(p)
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return p, "", false
	}

	cut := len(p) - len(base) + i
	return p[:cut], p[cut+1:], true
}

// AlternativeName returns "{stem}({index}).{ext}" for p, ie: "a/b/name.txt" with index 2 becomes "a/b/name(2).txt".
// Names without an extension are rejected with storages.ErrNoExtension.
func AlternativeName(p string, index int) (string, error) {
	stem, ext, ok := SplitExt(p)
	if !ok {
		return "", fmt.Errorf("%w: %q", storages.ErrNoExtension, p)
	}

	return fmt.Sprintf("%s(%d).%s", stem, index, ext), nil
}

// AvailableName probes name, then AlternativeName(name, 1), AlternativeName(name, 2), ... with exists and returns the
// first candidate that is free. maxAttempts caps the number of alternatives tried; zero means no cap.
func AvailableName(name string, maxAttempts int, exists func(string) (bool, error)) (string, error) {
	candidate := name

	for index := 1; ; index++ {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}

		if maxAttempts > 0 && index > maxAttempts {
			return "", fmt.Errorf("%w: %s", storages.ErrNameUnavailable, name)
		}

		candidate, err = AlternativeName(name, index)
		if err != nil {
			return "", err
		}
	}
}
