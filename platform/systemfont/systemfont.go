package systemfont

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/fontresolve"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fontresolve'
func tracer() tracing.Trace {
	return tracing.Select("fontresolve")
}

// ErrNoSuchFont is returned if no installed font serves a generic family.
var ErrNoSuchFont = errors.New("no such system font")

// IO helps to de-couple I/O from the system IO.
type IO interface {
	UserConfigDir() (string, error)
	DirFS(string) fs.FS
	ReadAll(io.Reader) ([]byte, error)
	FindFont(filename string) (string, error)
}

type systemIO struct{}

func (s *systemIO) UserConfigDir() (string, error) {
	return os.UserConfigDir()
}

func (s *systemIO) DirFS(path string) fs.FS {
	return os.DirFS(path)
}

func (s *systemIO) ReadAll(r io.Reader) ([]byte, error) {
	return io.ReadAll(r)
}

func (s *systemIO) FindFont(filename string) (string, error) {
	return findfont.Find(filename)
}

// candidate is an installed family able to stand in for a generic family,
// with its font file names for regular, bold, italic and bold-italic.
type candidate struct {
	family string
	files  [4]string
}

var candidates = map[string][]candidate{
	"serif": {
		{"DejaVu Serif", [4]string{"DejaVuSerif.ttf", "DejaVuSerif-Bold.ttf", "DejaVuSerif-Italic.ttf", "DejaVuSerif-BoldItalic.ttf"}},
		{"Liberation Serif", [4]string{"LiberationSerif-Regular.ttf", "LiberationSerif-Bold.ttf", "LiberationSerif-Italic.ttf", "LiberationSerif-BoldItalic.ttf"}},
	},
	"sans-serif": {
		{"DejaVu Sans", [4]string{"DejaVuSans.ttf", "DejaVuSans-Bold.ttf", "DejaVuSans-Oblique.ttf", "DejaVuSans-BoldOblique.ttf"}},
		{"Liberation Sans", [4]string{"LiberationSans-Regular.ttf", "LiberationSans-Bold.ttf", "LiberationSans-Italic.ttf", "LiberationSans-BoldItalic.ttf"}},
	},
	"monospace": {
		{"DejaVu Sans Mono", [4]string{"DejaVuSansMono.ttf", "DejaVuSansMono-Bold.ttf", "DejaVuSansMono-Oblique.ttf", "DejaVuSansMono-BoldOblique.ttf"}},
		{"Liberation Mono", [4]string{"LiberationMono-Regular.ttf", "LiberationMono-Bold.ttf", "LiberationMono-Italic.ttf", "LiberationMono-BoldItalic.ttf"}},
	},
}

// Locator finds installed fonts to serve the generic families serif,
// sans-serif and monospace. It never scans for arbitrary families.
type Locator struct {
	appkey string
	io     IO

	loadFontList sync.Once
	fontList     []fcEntry
	fontListOK   bool
}

// New creates a Locator.
//
// appkey: an identifier for the calling application to find config files
// io: guide I/O, may be nil
func New(appkey string, io IO) *Locator {
	if io == nil {
		io = &systemIO{}
	}
	return &Locator{appkey: appkey, io: io}
}

// Locate searches for an installed font serving a generic family in the
// requested style. It returns a file system and a path within it.
//
// If present and configured, Locate will be using a fontconfig list
// (https://www.freedesktop.org/wiki/Software/fontconfig/).
// If fontconfig is not configured, Locate will fall back to looking for
// well-known font files in the system's fonts-folders (OS dependent).
func (l *Locator) Locate(generic string, flags fontresolve.StyleFlags) (fs.FS, string, error) {
	cands, ok := candidates[generic]
	if !ok {
		return nil, "", ErrNoSuchFont
	}
	l.loadFontList.Do(func() {
		l.fontList, l.fontListOK = loadFontConfigList(l.appkey, l.io)
	})
	if l.fontListOK {
		for _, c := range cands {
			if fpath := findFontConfigFont(l.fontList, c.family, flags); fpath != "" {
				tracer().Debugf("fontconfig serves %s with %s", generic, fpath)
				return wrapDirFS(l.io, fpath)
			}
		}
		// fontconfig is active, but didn't find a font;
		// therefore don't do a file system scan
		return nil, "", ErrNoSuchFont
	}
	for _, c := range cands {
		fpath, err := l.io.FindFont(c.files[variantIndex(flags)])
		if err == nil && fpath != "" {
			tracer().Debugf("%s is served by system font %s", generic, fpath)
			return wrapDirFS(l.io, fpath)
		}
	}
	return nil, "", ErrNoSuchFont
}

func variantIndex(flags fontresolve.StyleFlags) int {
	switch flags {
	case fontresolve.Bold:
		return 1
	case fontresolve.Italic:
		return 2
	case fontresolve.BoldItalic:
		return 3
	}
	return 0
}

func wrapDirFS(io IO, fontpath string) (fs.FS, string, error) {
	d, f := filepath.Split(fontpath)
	if f == "" || !strings.Contains(f, ".") {
		return nil, "", errors.New("path error with system font file path")
	}
	if d == "" {
		d = "."
	}
	return io.DirFS(d), f, nil
}
