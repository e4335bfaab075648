package generator

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"sync"
)

// placeholderPattern matches <%= key %> with optional inner whitespace.
var placeholderPattern = regexp.MustCompile(`<%=\s*([A-Za-z_][A-Za-z0-9_]*)\s*%>`)

// EscapeFunc prepares a value for the file format it is substituted into.
type EscapeFunc func(string) string

// Renderer substitutes placeholders and caches template sources
type Renderer struct {
	cache map[string][]byte
	mu    sync.RWMutex // Protect cache for concurrent access
}

// NewRenderer creates a renderer with an empty cache
func NewRenderer() *Renderer {
	return &Renderer{
		cache: make(map[string][]byte),
	}
}

// RenderString renders a template held in memory
func (r *Renderer) RenderString(src string, vars map[string]string, escape EscapeFunc) []byte {
	return []byte(Render(src, vars, escape))
}

// RenderFS renders a template read from fsys.
// Sources are cached by path, so a renderer should only ever be used with
// one asset bundle.
func (r *Renderer) RenderFS(fsys fs.FS, path string, vars map[string]string, escape EscapeFunc) ([]byte, error) {
	src, err := r.source(fsys, path)
	if err != nil {
		return nil, err
	}
	return r.RenderString(string(src), vars, escape), nil
}

// ClearCache clears the template cache (useful for testing)
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string][]byte)
}

func (r *Renderer) source(fsys fs.FS, path string) ([]byte, error) {
	r.mu.RLock()
	if src, ok := r.cache[path]; ok {
		r.mu.RUnlock()
		return src, nil
	}
	r.mu.RUnlock()

	src, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read template '%s': %w", path, err)
	}

	r.mu.Lock()
	r.cache[path] = src
	r.mu.Unlock()

	return src, nil
}

// Render replaces every <%= key %> in src whose key is present in vars.
// Unknown keys are kept verbatim. escape may be nil.
func Render(src string, vars map[string]string, escape EscapeFunc) string {
	return placeholderPattern.ReplaceAllStringFunc(src, func(match string) string {
		key := placeholderPattern.FindStringSubmatch(match)[1]
		val, ok := vars[key]
		if !ok {
			return match
		}
		if escape != nil {
			return escape(val)
		}
		return val
	})
}

// Placeholders lists the distinct keys referenced by src, in order of first use.
func Placeholders(src string) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, m := range placeholderPattern.FindAllStringSubmatch(src, -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			keys = append(keys, m[1])
		}
	}
	return keys
}

// JSONString escapes s for use inside a double-quoted JSON string.
// Decoding the quoted result yields s exactly.
func JSONString(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail.
	_ = enc.Encode(s)
	out := strings.TrimSuffix(buf.String(), "\n")
	return out[1 : len(out)-1]
}

// EscapeFor picks the escaper for a destination file name: JSON files get
// JSONString, everything else is substituted raw.
func EscapeFor(name string) EscapeFunc {
	if strings.HasSuffix(name, ".json") {
		return JSONString
	}
	return nil
}
