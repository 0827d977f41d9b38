package platform

import "os/exec"

// FFmpegCommand is the transcoding tool the download library shells out to
// for merging streams and extracting audio.
const FFmpegCommand = "ffmpeg"

// LookPathFunc resolves an executable name on the search path.
type LookPathFunc func(name string) (string, error)

// ToolLocator reports whether external tools are installed.
type ToolLocator struct {
	lookPath LookPathFunc
}

// NewToolLocator returns a locator backed by exec.LookPath.
func NewToolLocator() *ToolLocator {
	return &ToolLocator{lookPath: exec.LookPath}
}

// NewToolLocatorWithLookPath returns a locator backed by a custom lookup.
func NewToolLocatorWithLookPath(lookPath LookPathFunc) *ToolLocator {
	return &ToolLocator{lookPath: lookPath}
}

// Has reports whether name is found on the executable search path.
func (l *ToolLocator) Has(name string) bool {
	_, err := l.lookPath(name)
	return err == nil
}

// HasFFmpeg reports whether ffmpeg is installed.
func (l *ToolLocator) HasFFmpeg() bool {
	return l.Has(FFmpegCommand)
}
