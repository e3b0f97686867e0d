package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyDefinition = "definition"
	KeyStructure  = "structure"
	KeyConfigSet  = "config_set"
	KeyTarget     = "target"
	KeyCommand    = "command"
	KeyDir        = "dir"
	KeyPath       = "path"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr { return slog.String(KeyRunID, id) }

func Definition(id string) slog.Attr { return slog.String(KeyDefinition, id) }

func Structure(id string) slog.Attr { return slog.String(KeyStructure, id) }

func ConfigSet(id string) slog.Attr { return slog.String(KeyConfigSet, id) }

func Target(name string) slog.Attr { return slog.String(KeyTarget, name) }

func Command(cmd string) slog.Attr { return slog.String(KeyCommand, cmd) }

func Dir(dir string) slog.Attr { return slog.String(KeyDir, dir) }

func Path(p string) slog.Attr { return slog.String(KeyPath, p) }

func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
