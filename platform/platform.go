/*
Package platform defines what the resolver needs from a host platform's
font system.

A host provides a Factory for typefaces, a FileSystem to probe for font
files and an AssetSource giving access to the application's packaged
resources. Hosts which can construct typefaces with variation settings
additionally implement BuilderFactory.

Sub-package gofonts contains an implementation backed by the Go fonts and
pure-Go font parsers.
*/
package platform

import (
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/fontresolve"
)

// Factory creates typefaces.
type Factory interface {
	// Create returns a typeface for a built-in family, e.g. "sans-serif-medium".
	Create(family string, flags fontresolve.StyleFlags) *fontresolve.Typeface
	// Derive returns a variant of base with different style flags.
	Derive(base *fontresolve.Typeface, flags fontresolve.StyleFlags) *fontresolve.Typeface
	// CreateFromFile constructs a typeface from a font file within assets.
	CreateFromFile(assets fs.FS, path string) (*fontresolve.Typeface, error)
}

// BuilderFactory is implemented by factories supporting the typeface builder
// API (platform version VersionVariations and up).
type BuilderFactory interface {
	NewBuilder(assets fs.FS, path string) (Builder, error)
}

// Builder constructs a typeface from a font file, applying variation
// settings in the form "'wght' 400, 'wdth' 100".
type Builder interface {
	SetVariationSettings(settings string) Builder
	Build() (*fontresolve.Typeface, error)
}

// FileSystem is used to locate font files.
type FileSystem interface {
	Exists(path string) bool
	Join(elem ...string) string
	AppRoot() string
}

// AssetSource fetches the application's assets. A nil result signals that
// assets are unavailable.
type AssetSource func() fs.FS

// FontsFolder is the folder below the application root holding font files.
const FontsFolder = "fonts"

// Host bundles the collaborators of a platform together with its version.
type Host struct {
	Version int
	Factory Factory
	Files   FileSystem
	Assets  AssetSource
}

// --- fs.FS based file system ----------------------------------------------

// DirFS is a FileSystem on top of an fs.FS. Paths are slash-separated and
// relative to the root of the fs.FS.
type DirFS struct {
	FS   fs.FS
	Root string // application root within FS, "." if empty
}

// NewDirFS creates a FileSystem for fsys, with the application root at root.
// A leading slash of root is dropped: root always names a folder within fsys,
// i.e. "/app" and "app" are equivalent.
func NewDirFS(fsys fs.FS, root string) DirFS {
	return DirFS{FS: fsys, Root: cleanRoot(root)}
}

func cleanRoot(root string) string {
	root = strings.TrimLeft(path.Clean("/"+root), "/")
	if root == "" {
		return "."
	}
	return root
}

// Exists is true if path names a regular file.
func (d DirFS) Exists(p string) bool {
	if d.FS == nil || !fs.ValidPath(p) {
		return false
	}
	info, err := fs.Stat(d.FS, p)
	return err == nil && info.Mode().IsRegular()
}

func (d DirFS) Join(elem ...string) string {
	return path.Join(elem...)
}

func (d DirFS) AppRoot() string {
	return cleanRoot(d.Root)
}

// Assets returns an AssetSource handing out d's file system.
func (d DirFS) Assets() AssetSource {
	return func() fs.FS {
		return d.FS
	}
}
