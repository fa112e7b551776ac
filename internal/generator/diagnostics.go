package generator

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// Diagnostics preserves failed prompt/response exchanges to a directory
// for offline inspection. Responses that fail JSON extraction or parsing
// are never shown to end users, so this sink is the only place they can
// be recovered from. An empty directory disables persistence.
type Diagnostics struct {
	dir string
	now func() time.Time
}

func NewDiagnostics(dir string) *Diagnostics {
	return &Diagnostics{dir: dir, now: time.Now}
}

// SaveInitialResponse preserves the first raw backend response of a run,
// before JSON extraction, so prompt changes can be judged against what
// the backend actually returned.
func (d *Diagnostics) SaveInitialResponse(response string) {
	if d == nil || d.dir == "" {
		return
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		slog.Default().Error("failed to create diagnostics directory", "dir", d.dir, "error", err)
		return
	}

	path := filepath.Join(d.dir, fmt.Sprintf("initial_response_%s.txt", d.now().UTC().Format("2006_01_02T15_04_05")))
	if err := os.WriteFile(path, []byte(response), 0o644); err != nil {
		slog.Default().Error("failed to save initial response", "path", path, "error", err)
		return
	}
	slog.Default().Info("saved initial backend response", "path", path)
}

// SaveFailure writes the prompt and raw response of a failed exchange.
// Errors are logged, not returned: diagnostics must never mask the
// failure that triggered them.
func (d *Diagnostics) SaveFailure(stage, prompt, response string) {
	if d == nil || d.dir == "" {
		return
	}

	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		slog.Default().Error("failed to create diagnostics directory", "dir", d.dir, "error", err)
		return
	}

	timestamp := d.now().UTC().Format("2006_01_02T15_04_05")
	promptPath := filepath.Join(d.dir, fmt.Sprintf("prompt_error_%s_%s.txt", timestamp, stage))
	responsePath := filepath.Join(d.dir, fmt.Sprintf("response_error_%s_%s.txt", timestamp, stage))

	if err := os.WriteFile(promptPath, []byte(prompt), 0o644); err != nil {
		slog.Default().Error("failed to save failing prompt", "path", promptPath, "error", err)
	}
	if err := os.WriteFile(responsePath, []byte(response), 0o644); err != nil {
		slog.Default().Error("failed to save failing response", "path", responsePath, "error", err)
	}
	slog.Default().Info("saved failing exchange for inspection",
		"stage", stage,
		"prompt", promptPath,
		"response", responsePath,
	)
}
