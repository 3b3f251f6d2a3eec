package extract

import (
	"errors"
	"regexp"
	"strings"
)

// ErrNoID means the input matched neither extraction rule. Callers should
// treat it as bad user input, not a failure of the tool.
var ErrNoID = errors.New("no folder ID found in input")

var idRun = regexp.MustCompile(`[A-Za-z0-9_-]{25,}`)

// ExtractID pulls a Drive resource ID out of raw user input.
// A "folders/" style URL yields everything after the last slash; otherwise the
// first run of at least 25 ID-alphabet characters wins. Anything else is ErrNoID.
func ExtractID(raw string) (string, error) {
	if strings.Contains(raw, "folders/") {
		return raw[strings.LastIndex(raw, "/")+1:], nil
	}
	if m := idRun.FindString(raw); m != "" {
		return m, nil
	}
	return "", ErrNoID
}
