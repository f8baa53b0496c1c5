// Package detector picks the log format from the environment.
package detector

import (
	"os"

	"go.trai.ch/dataloader/internal/core/domain"
	"golang.org/x/term"
)

// DetectLogFormat returns pretty when stderr is a terminal outside CI, and JSON otherwise.
func DetectLogFormat() domain.LogFormat {
	return detect(term.IsTerminal(int(os.Stderr.Fd())), os.Getenv("CI"))
}

func detect(isTTY bool, ci string) domain.LogFormat {
	isCI := ci == "true" || ci == "1"
	if !isTTY || isCI {
		return domain.LogFormatJSON
	}
	return domain.LogFormatPretty
}

// ResolveLogFormat applies the configured format to the detected one.
// Auto, empty and unknown values keep the detected format.
func ResolveLogFormat(detected, configured domain.LogFormat) domain.LogFormat {
	switch configured {
	case domain.LogFormatPretty, domain.LogFormatJSON:
		return configured
	default:
		return detected
	}
}
