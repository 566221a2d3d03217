package util

import (
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

type Path = string
type URI = string

// Handle pairs the two names a file is known by.
type Handle struct {
	URI  URI
	Path Path
}

func FromPath(path Path) Handle {
	return Handle{Path2URI(path), path}
}

func FromURI(uri URI) (Handle, error) {
	path, err := URI2Path(uri)
	return Handle{uri, path}, err
}

// Converting functions

func URI2Path(uri URI) (Path, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	if IsWindowsDriveURIPath(u.Path) {
		u.Path = strings.ToUpper(string(u.Path[1])) + u.Path[2:]
	}
	return filepath.FromSlash(u.Path), nil
}

func Path2URI(path Path) URI {
	scheme := "file://"
	if runtime.GOOS == "windows" {
		path = "/" + strings.Replace(path, "\\", "/", -1)
	}
	return scheme + path
}

func IsWindowsDriveURIPath(uri string) bool {
	if len(uri) < 4 {
		return false
	}
	return uri[0] == '/' && unicode.IsLetter(rune(uri[1])) && uri[2] == ':'
}

func IsWindowsDrivePath(path string) bool {
	if len(path) < 3 {
		return false
	}
	return unicode.IsLetter(rune(path[0])) && path[1] == ':'
}
