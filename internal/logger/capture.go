package logger

import "sync"

// Entry is a single captured log record.
type Entry struct {
	Level     string
	Component string
	Message   string
	Err       error
	Fields    map[string]interface{}
}

// Capture records every log call for inspection in tests.
type Capture struct {
	mu      sync.Mutex
	entries []Entry
}

func NewCapture() *Capture {
	return &Capture{}
}

func (c *Capture) Entries() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

func (c *Capture) record(e Entry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, e)
}

func (c *Capture) Debug(component, message string, fields map[string]interface{}) {
	c.record(Entry{Level: "debug", Component: component, Message: message, Fields: fields})
}

func (c *Capture) Info(component, message string, fields map[string]interface{}) {
	c.record(Entry{Level: "info", Component: component, Message: message, Fields: fields})
}

func (c *Capture) Warning(component, message string, fields map[string]interface{}) {
	c.record(Entry{Level: "warning", Component: component, Message: message, Fields: fields})
}

func (c *Capture) Error(component string, err error, fields map[string]interface{}) {
	c.record(Entry{Level: "error", Component: component, Err: err, Fields: fields})
}
