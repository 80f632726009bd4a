package systemfont

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"strings"

	"github.com/npillmayer/fontresolve"
)

// fcEntry is a line of a fontconfig font list.
type fcEntry struct {
	families []string // lower case
	path     string
	variant  fontresolve.StyleFlags
	regular  bool
}

// findFontListConfigDir will create a sub-filesystem for the user's configuration directory,
// suffixed with "<appkey>/fontconfig".
func findFontListConfigDir(appkey string, io IO) (fs.FS, error) {
	if appkey == "" {
		return nil, errors.New("missing app-key for font list config search")
	}
	uconfdir, err := io.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot open user configuration directory: %w", err)
	}
	fontListConfigDir := path.Join(uconfdir, appkey)
	tracer().Debugf("fontListConfigDir base = %v", fontListConfigDir)
	return fs.Sub(io.DirFS(fontListConfigDir), "fontconfig")
}

func findFontList(appkey string, io IO) (list []byte, err error) {
	const listfile = "fontlist.txt"
	var configFS fs.FS
	configFS, err = findFontListConfigDir(appkey, io)
	if err != nil {
		return nil, err
	}
	return readFile(configFS, listfile, io)
}

func readFile(fsys fs.FS, name string, io IO) ([]byte, error) {
	if readFS, ok := fsys.(fs.ReadFileFS); ok {
		// Fast file reading within the sandboxed config area.
		return readFS.ReadFile(name)
	}
	// else do it the traditional way
	file, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

// loadFontConfigList searches the user's configuration directory for a font list file,
// as produced by
//
//	fc-list > <user-config>/<appkey>/fontconfig/fontlist.txt
//
// then reads the file and parses it into a list of font files.
func loadFontConfigList(appkey string, io IO) ([]fcEntry, bool) {
	fclist, err := findFontList(appkey, io)
	if err != nil {
		return nil, false
	}
	var entries []fcEntry
	scanner := bufio.NewScanner(bytes.NewReader(fclist))
	ttc := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ":")
		if len(fields) < 3 {
			continue
		}
		fontpath := strings.TrimSpace(fields[0])
		if strings.HasSuffix(fontpath, ".ttc") {
			ttc++
			continue
		}
		e := fcEntry{path: fontpath}
		for _, name := range strings.Split(fields[1], ",") {
			name = strings.TrimPrefix(strings.TrimSpace(name), ".")
			if name != "" {
				e.families = append(e.families, strings.ToLower(name))
			}
		}
		e.variant, e.regular = parseVariant(strings.ToLower(fields[2]))
		entries = append(entries, e)
	}
	if err = scanner.Err(); err != nil {
		tracer().Errorf("encountered a problem during reading of fontconfig font list: %v", err)
		return entries, false
	}
	if ttc > 0 {
		tracer().Infof("skipping %d platform fonts: TTC not supported", ttc)
	}
	tracer().Infof("loaded fontconfig list with %d fonts", len(entries))
	return entries, true
}

// parseVariant interprets a fontconfig style field such as "style=Bold Italic".
func parseVariant(style string) (variant fontresolve.StyleFlags, regular bool) {
	if strings.Contains(style, "bold") || strings.Contains(style, "black") {
		variant |= fontresolve.Bold
	}
	if strings.Contains(style, "italic") || strings.Contains(style, "oblique") {
		variant |= fontresolve.Italic
	}
	if variant == 0 {
		regular = strings.Contains(style, "regular") || strings.Contains(style, "book") ||
			strings.Contains(style, "text")
	}
	return
}

// findFontConfigFont returns the path of a font file of a family with the
// requested style variant, or "".
func findFontConfigFont(entries []fcEntry, family string, flags fontresolve.StyleFlags) string {
	family = strings.ToLower(family)
	for _, e := range entries {
		if e.variant != flags || (flags == 0 && !e.regular) {
			continue
		}
		for _, f := range e.families {
			if f == family {
				return e.path
			}
		}
	}
	return ""
}
