package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyPath       = "path"
	KeyPage       = "page"
	KeySection    = "section"
	KeyStoreKey   = "store_key"
	KeyBackend    = "backend"
	KeyDurationMS = "duration_ms"
	KeyPages      = "pages"
	KeyExcluded   = "excluded"
	KeyDepth      = "depth"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr     { return slog.String(KeyBuildID, id) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Page(p string) slog.Attr         { return slog.String(KeyPage, p) }
func Section(s string) slog.Attr      { return slog.String(KeySection, s) }
func StoreKey(k string) slog.Attr     { return slog.String(KeyStoreKey, k) }
func Backend(b string) slog.Attr      { return slog.String(KeyBackend, b) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Pages(n int) slog.Attr           { return slog.Int(KeyPages, n) }
func Excluded(n int) slog.Attr        { return slog.Int(KeyExcluded, n) }
func Depth(n int) slog.Attr           { return slog.Int(KeyDepth, n) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
