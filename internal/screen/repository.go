package screen

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotFound reports that a flow or screen does not resolve to a
// readable document. Malformed JSON on disk is deliberately folded into
// it: for navigation reads a broken file and a missing file look the
// same, and the parse failure is only logged.
var ErrNotFound = errors.New("screen not found")

// Repository resolves (flow, screen) identifier pairs against a single
// assets root laid out as {root}/{flowId}/{screenId}.json.
type Repository struct {
	root   string
	logger *slog.Logger
}

// NewRepository returns a repository over root. A nil logger falls back
// to slog.Default.
func NewRepository(root string, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{root: root, logger: logger}
}

// Root returns the directory this repository reads from.
func (r *Repository) Root() string {
	return r.root
}

// Load reads and decodes one screen document. Absent or malformed files
// both come back as ErrNotFound; the caller is expected to turn that
// into a diagnostic carrying ListFlows/ListScreens output.
func (r *Repository) Load(flowID, screenID string) (*Document, error) {
	path := filepath.Join(r.root, flowID, screenID+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s/%s: %w", flowID, screenID, ErrNotFound)
		}
		r.logger.Warn("screen read failed", "flow", flowID, "screen", screenID, "error", err)
		return nil, fmt.Errorf("%s/%s: %w", flowID, screenID, ErrNotFound)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		r.logger.Warn("screen document is not valid JSON", "flow", flowID, "screen", screenID, "error", err)
		return nil, fmt.Errorf("%s/%s: %w", flowID, screenID, ErrNotFound)
	}
	return &doc, nil
}

// ListFlows returns the flow ids under the root. A missing root is the
// same as an empty one.
func (r *Repository) ListFlows() []string {
	return listSubdirectories(r.root)
}

// ListScreens returns the screen ids inside one flow folder, derived
// from *.json filenames. Missing flow folders yield an empty list.
func (r *Repository) ListScreens(flowID string) []string {
	entries, err := os.ReadDir(filepath.Join(r.root, flowID))
	if err != nil {
		return []string{}
	}

	screens := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".json") {
			continue
		}
		screens = append(screens, strings.TrimSuffix(name, ".json"))
	}
	sort.Strings(screens)
	return screens
}

func listSubdirectories(path string) []string {
	entries, err := os.ReadDir(path)
	if err != nil {
		return []string{}
	}

	dirs := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	sort.Strings(dirs)
	return dirs
}
