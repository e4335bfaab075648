package exec

import (
	"bytes"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// PrefixWriter adds a styled prefix to each line of output.
// Partial lines are held back until their newline arrives or Flush is called.
type PrefixWriter struct {
	mu     sync.Mutex
	prefix string
	writer io.Writer
	buffer []byte
}

// NewPrefixWriter creates a writer that prefixes each line
func NewPrefixWriter(writer io.Writer, prefix string, color lipgloss.Color) *PrefixWriter {
	if color != "" {
		prefix = lipgloss.NewStyle().Foreground(color).Render(prefix)
	}
	return &PrefixWriter{
		prefix: prefix,
		writer: writer,
	}
}

// Write adds prefix to each complete line
func (p *PrefixWriter) Write(data []byte) (n int, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.buffer = append(p.buffer, data...)
	for {
		i := bytes.IndexByte(p.buffer, '\n')
		if i < 0 {
			break
		}
		if err := p.writeLine(p.buffer[:i]); err != nil {
			return 0, err
		}
		p.buffer = p.buffer[i+1:]
	}

	return len(data), nil
}

// Flush writes any remaining buffered content as a final line
func (p *PrefixWriter) Flush() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.buffer) == 0 {
		return nil
	}
	err := p.writeLine(p.buffer)
	p.buffer = p.buffer[:0]
	return err
}

func (p *PrefixWriter) writeLine(line []byte) error {
	out := make([]byte, 0, len(p.prefix)+len(line)+1)
	out = append(out, p.prefix...)
	out = append(out, line...)
	out = append(out, '\n')
	_, err := p.writer.Write(out)
	return err
}
