package sys

import "path/filepath"

// Path is a filesystem path built from a user-supplied filename.
type Path string

// ToPath converts a filename to a Path. The name is kept as given.
func ToPath(filename string) Path {
	return Path(filename)
}

func (p Path) String() string { return string(p) }

// Base returns the last element of the path.
func (p Path) Base() string { return filepath.Base(string(p)) }

// Dir returns all but the last element of the path.
func (p Path) Dir() Path { return Path(filepath.Dir(string(p))) }

// Ext returns the file name extension, including the dot.
func (p Path) Ext() string { return filepath.Ext(string(p)) }

// Join appends elements to the path.
func (p Path) Join(elem ...string) Path {
	return Path(filepath.Join(append([]string{string(p)}, elem...)...))
}

// IsAbs reports whether the path is absolute.
func (p Path) IsAbs() bool { return filepath.IsAbs(string(p)) }

// Clean returns the shortest equivalent path.
func (p Path) Clean() Path { return Path(filepath.Clean(string(p))) }
