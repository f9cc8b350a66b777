package housing

import "fmt"

// Level is the severity of a diagnostic.
type Level uint8

const (
	LevelInfo Level = iota
	LevelWarn
)

func (l Level) String() string {
	if l == LevelWarn {
		return "warn"
	}

	return "info"
}

// Entry is one note recorded by a pipeline stage.
type Entry struct {
	Stage   string
	Level   Level
	Message string
	Rows    int // row count after the stage, -1 if not applicable
}

func (e Entry) String() string {
	if e.Rows < 0 {
		return fmt.Sprintf("[%s] %s: %s", e.Level, e.Stage, e.Message)
	}

	return fmt.Sprintf("[%s] %s: %s (%d rows)", e.Level, e.Stage, e.Message, e.Rows)
}

// Diagnostics collects what the pipeline did to the data. The core never prints; callers
// decide where entries go. A nil *Diagnostics discards everything.
type Diagnostics struct {
	entries []Entry
}

func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

func (d *Diagnostics) Info(stage string, rows int, format string, args ...any) {
	d.add(LevelInfo, stage, rows, format, args...)
}

func (d *Diagnostics) Warn(stage string, rows int, format string, args ...any) {
	d.add(LevelWarn, stage, rows, format, args...)
}

func (d *Diagnostics) add(level Level, stage string, rows int, format string, args ...any) {
	if d == nil {
		return
	}

	d.entries = append(d.entries, Entry{Stage: stage, Level: level, Message: fmt.Sprintf(format, args...), Rows: rows})
}

// Entries returns the entries in the order recorded.
func (d *Diagnostics) Entries() []Entry {
	if d == nil {
		return nil
	}

	return append([]Entry{}, d.entries...)
}

// Warnings returns the warn-level entries.
func (d *Diagnostics) Warnings() []Entry {
	var out []Entry
	for _, e := range d.Entries() {
		if e.Level == LevelWarn {
			out = append(out, e)
		}
	}

	return out
}
