package assets

import (
	"embed"
	"io"
)

//go:embed example.txt
var FS embed.FS

// Example opens the puzzle's worked example (five games, answer 8).
func Example() (io.ReadCloser, error) {
	return FS.Open("example.txt")
}
