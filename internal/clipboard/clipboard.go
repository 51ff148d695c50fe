// Package clipboard provides best-effort access to the system
// clipboard. Failures are expected in sandboxed or headless
// environments and must be swallowed by callers.
package clipboard

import "github.com/atotto/clipboard"

// Clipboard defines the interface for clipboard operations.
type Clipboard interface {
	Copy(text string) error
}

// System implements Clipboard using the platform clipboard.
type System struct{}

// Copy copies text to the system clipboard.
func (System) Copy(text string) error {
	return clipboard.WriteAll(text)
}

// Mock records copies for testing.
type Mock struct {
	Copied []string
	Err    error
}

// Copy records the text and returns the configured error.
func (m *Mock) Copy(text string) error {
	if m.Err != nil {
		return m.Err
	}
	m.Copied = append(m.Copied, text)
	return nil
}
