package overlay

import "sync"

// TextDisplay shows the coordinate text of the latest pick. An empty string clears it.
type TextDisplay interface {
	ShowText(s string)
}

// TextFunc adapts a plain function to TextDisplay.
type TextFunc func(s string)

// ShowText calls f(s).
func (f TextFunc) ShowText(s string) {
	f(s)
}

// Label is a TextDisplay that stores the text for a renderer to draw later.
type Label struct {
	mu      sync.Mutex
	text    string
	version uint64
}

var _ TextDisplay = &Label{}

// ShowText replaces the label text.
func (l *Label) ShowText(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.text == s {
		return
	}
	l.text = s
	l.version++
}

// Text returns the current label text and how many times it has changed.
func (l *Label) Text() (string, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.text, l.version
}

// MultiDisplay fans the text out to several displays in order.
type MultiDisplay []TextDisplay

// ShowText forwards s to every display.
func (m MultiDisplay) ShowText(s string) {
	for _, d := range m {
		d.ShowText(s)
	}
}
