// assets/embed.go
//
// Bundled word list, compiled into the binary so the game runs
// without any file on disk (word-list source "builtin").

package assets

import (
	"embed"
)

//go:embed words5.txt
var FS embed.FS

// BuiltinName is the file inside FS holding the bundled five-letter list.
const BuiltinName = "words5.txt"

// WordList returns the raw text of the bundled word list.
func WordList() (string, error) {
	b, err := FS.ReadFile(BuiltinName)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
