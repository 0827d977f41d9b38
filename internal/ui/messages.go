package ui

import (
	"errors"

	"github.com/ytget/simple-downloader/internal/download"
)

// StatusForError turns a fetch or job error into the status line shown to the user.
func StatusForError(l *Localization, err error) string {
	if err == nil {
		return ""
	}

	var (
		validationErr *download.ValidationError
		missingErr    *download.MissingDependencyError
		ioErr         *download.IOError
		fetchErr      *download.FetchError
		downloadErr   *download.DownloadError
	)

	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field == "url" {
			return l.GetText(KeyPleaseEnterURL)
		}
		return l.Format(KeyError, validationErr.Error())
	case errors.As(err, &missingErr):
		return l.GetText(KeyFFmpegRequired)
	case errors.As(err, &ioErr):
		return l.Format(KeyDirectoryError, ioErr.Err)
	case errors.As(err, &fetchErr):
		return l.Format(KeyError, fetchErr.Error())
	case errors.As(err, &downloadErr):
		return l.Format(KeyDownloadFailed, downloadErr.Error())
	}

	return l.Format(KeyError, err.Error())
}

// StatusForWarning localizes a non-fatal job warning.
func StatusForWarning(l *Localization, warning string) string {
	if warning == download.WarningNoFFmpegMerge {
		return l.GetText(KeyFFmpegWarning)
	}
	return warning
}
