package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atomicstack/rentroll/internal/logging"
)

const (
	ImportCommandWord = "import"
	ExportCommandWord = "export"
)

// AcceptedDataExtensions lists the file formats import/export understand.
var AcceptedDataExtensions = []string{".json", ".csv"}

// IsAcceptedDataFile reports whether the path carries an accepted extension.
func IsAcceptedDataFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, accepted := range AcceptedDataExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}

const (
	ImportMessageUsage = ImportCommandWord + ": Imports clients from a .json or .csv file.\n" +
		"Parameters: FILE\nExample: " + ImportCommandWord + " clients.csv"
	ExportMessageUsage = ExportCommandWord + ": Exports all clients to a .json or .csv file.\n" +
		"Parameters: FILE\nExample: " + ExportCommandWord + " backup.json"
)

// ImportCommand merges clients read from Path into the book. The parser has
// already vetted the file extension; runtime failures (missing file, bad
// contents) surface as command errors.
type ImportCommand struct {
	Path string
}

func (c *ImportCommand) Execute(ctx *Context) (CommandResult, error) {
	if ctx.Store == nil {
		return CommandResult{}, &Error{Message: "No storage is configured"}
	}
	read, err := ctx.Store.ImportInto(ctx.Book, c.Path)
	if err != nil {
		return CommandResult{}, &Error{Message: fmt.Sprintf("Import failed: %v", err)}
	}
	if err := ctx.Store.Save(ctx.Book); err != nil {
		return CommandResult{}, &Error{Message: fmt.Sprintf("Imported %d clients but save failed: %v", read, err)}
	}
	logging.Info("imported %d clients from %s", read, c.Path)
	return CommandResult{Feedback: fmt.Sprintf("Imported %d clients from %s", read, c.Path)}, nil
}

// ExportCommand writes the whole book to Path in the format implied by its
// extension.
type ExportCommand struct {
	Path string
}

func (c *ExportCommand) Execute(ctx *Context) (CommandResult, error) {
	if ctx.Store == nil {
		return CommandResult{}, &Error{Message: "No storage is configured"}
	}
	if err := ctx.Store.Export(ctx.Book, c.Path); err != nil {
		return CommandResult{}, &Error{Message: fmt.Sprintf("Export failed: %v", err)}
	}
	logging.Info("exported %d clients to %s", ctx.Book.Size(), c.Path)
	return CommandResult{Feedback: fmt.Sprintf("Exported %d clients to %s", ctx.Book.Size(), c.Path)}, nil
}
