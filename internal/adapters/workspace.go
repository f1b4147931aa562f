package adapters

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"labware-import/internal/ports"
)

// definitionExtension marks primary definition files. Companion .ctr files
// are reached through their .rck file and deck templates (.tml) describe no
// labware, so neither is listed.
const definitionExtension = ".rck"

type WorkspaceAdapter struct{}

func NewWorkspaceAdapter() WorkspaceAdapter {
	return WorkspaceAdapter{}
}

func (a WorkspaceAdapter) FindDefinitions(root string) ([]string, error) {
	var paths []string
	if strings.TrimSpace(root) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("definition root is empty")
	}
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && shouldSkipDefinitionDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.EqualFold(filepath.Ext(path), definitionExtension) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan definition directory").
			WithCause(err)
	}
	sort.Strings(paths)
	return paths, nil
}

func shouldSkipDefinitionDir(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	switch strings.ToLower(name) {
	case "backup", "bak", "trash":
		return true
	default:
		return false
	}
}

var _ ports.DefinitionScanPort = WorkspaceAdapter{}
