package logger

import (
	"encoding/json"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

type Level int

const (
	Debug Level = iota
	Info
	Warn
	Error
)

// ParseLevel acepta debug|info|warn|warning|error; cualquier otra cosa es info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return Debug
	case "warn", "warning":
		return Warn
	case "error":
		return Error
	default:
		return Info
	}
}

func (l Level) String() string {
	switch l {
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "info"
	}
}

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

func ParseFormat(s string) Format {
	if strings.EqualFold(strings.TrimSpace(s), "json") {
		return FormatJSON
	}
	return FormatText
}

type Logger interface {
	With(fields map[string]any) Logger

	Debug(msg string, fields map[string]any)
	Info(msg string, fields map[string]any)
	Warn(msg string, fields map[string]any)
	Error(msg string, fields map[string]any)
}

type Options struct {
	Level  Level
	Format Format
	App    string

	// Writer destino; nil => stdout.
	Writer io.Writer

	// now se inyecta en tests.
	now func() time.Time
}

// sink es compartido por todos los loggers derivados con With,
// así las líneas no se intercalan.
type sink struct {
	mu  sync.Mutex
	w   io.Writer
	now func() time.Time
}

// StdLogger escribe una línea por entrada: ts, level y msg primero,
// después los campos ordenados por nombre.
type StdLogger struct {
	out    *sink
	level  Level
	format Format
	base   map[string]any
}

func New(opts Options) Logger {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}
	now := opts.now
	if now == nil {
		now = time.Now
	}
	format := opts.Format
	if format == "" {
		format = FormatText
	}

	base := map[string]any{}
	if app := strings.TrimSpace(opts.App); app != "" {
		base["app"] = app
	}

	return &StdLogger{
		out:    &sink{w: w, now: now},
		level:  opts.Level,
		format: format,
		base:   base,
	}
}

// Nop descarta todo. Default cuando no inyectan logger.
func Nop() Logger { return nopLogger{} }

type nopLogger struct{}

func (n nopLogger) With(map[string]any) Logger { return n }
func (nopLogger) Debug(string, map[string]any) {}
func (nopLogger) Info(string, map[string]any)  {}
func (nopLogger) Warn(string, map[string]any)  {}
func (nopLogger) Error(string, map[string]any) {}

func (l *StdLogger) With(fields map[string]any) Logger {
	if len(fields) == 0 {
		return l
	}
	return &StdLogger{
		out:    l.out,
		level:  l.level,
		format: l.format,
		base:   merge(l.base, fields),
	}
}

func (l *StdLogger) Debug(msg string, fields map[string]any) { l.log(Debug, msg, fields) }
func (l *StdLogger) Info(msg string, fields map[string]any)  { l.log(Info, msg, fields) }
func (l *StdLogger) Warn(msg string, fields map[string]any)  { l.log(Warn, msg, fields) }
func (l *StdLogger) Error(msg string, fields map[string]any) { l.log(Error, msg, fields) }

func (l *StdLogger) log(lvl Level, msg string, fields map[string]any) {
	if lvl < l.level {
		return
	}
	extra := merge(l.base, fields)
	ts := l.out.now().UTC().Format(time.RFC3339Nano)

	var line []byte
	if l.format == FormatJSON {
		line = encodeJSON(ts, lvl, msg, extra)
	} else {
		line = encodeText(ts, lvl, msg, extra)
	}

	l.out.mu.Lock()
	defer l.out.mu.Unlock()
	_, _ = l.out.w.Write(line)
}

func merge(base, fields map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(fields))
	for k, v := range base {
		out[k] = v
	}
	for k, v := range fields {
		if strings.TrimSpace(k) == "" {
			continue
		}
		// ts/level/msg son reservados
		if k == "ts" || k == "level" || k == "msg" {
			k = "field." + k
		}
		out[k] = v
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func encodeJSON(ts string, lvl Level, msg string, fields map[string]any) []byte {
	entry := make(map[string]any, len(fields)+3)
	for k, v := range fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		entry[k] = v
	}
	entry["ts"] = ts
	entry["level"] = lvl.String()
	entry["msg"] = msg

	b, err := json.Marshal(entry)
	if err != nil {
		b, _ = json.Marshal(map[string]any{"ts": ts, "level": lvl.String(), "msg": msg, "log_error": err.Error()})
	}
	return append(b, '\n')
}

func encodeText(ts string, lvl Level, msg string, fields map[string]any) []byte {
	var b strings.Builder
	b.WriteString("ts=" + ts)
	b.WriteString(" level=" + lvl.String())
	b.WriteString(" msg=" + textValue(msg))
	for _, k := range sortedKeys(fields) {
		b.WriteString(" " + k + "=" + textValue(fields[k]))
	}
	b.WriteByte('\n')
	return []byte(b.String())
}

// textValue cita los valores con espacios, comillas o '=' para que la línea siga siendo parseable.
func textValue(v any) string {
	var s string
	switch x := v.(type) {
	case string:
		s = x
	case error:
		s = x.Error()
	case time.Duration:
		s = x.String()
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return strconv.Quote(err.Error())
		}
		s = strings.Trim(string(b), `"`)
	}
	if s == "" || strings.ContainsAny(s, " \t\n\"=") {
		return strconv.Quote(s)
	}
	return s
}
