package wslutils

// This file exports private functions used for unit testing

// SetDebugf replaces the logger receiving the parser traces.
func (l *Lister) SetDebugf(f func(format string, args ...any)) {
	l.debugf = f
}
