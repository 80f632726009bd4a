package fontconf

import (
	"os"

	"github.com/npillmayer/fontresolve/platform"
	"github.com/npillmayer/fontresolve/platform/gofonts"
)

// NewHost creates a host from settings, using the gofonts platform and the
// operating system's file system. Font files are searched for at
// <AppRoot>/fonts.
func NewHost(s Settings) platform.Host {
	var opts []gofonts.Option
	if s.SystemFonts {
		opts = append(opts, gofonts.WithSystemFonts(s.AppKey, nil))
	}
	files := platform.NewDirFS(os.DirFS(s.AppRoot), ".")
	return platform.Host{
		Version: s.PlatformVersion,
		Factory: gofonts.New(opts...),
		Files:   files,
		Assets:  files.Assets(),
	}
}
