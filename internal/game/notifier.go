package game

// Notifier is told about every change to a Board. It runs synchronously
// after the mutation and must not call back into mutating Board methods.
type Notifier interface {
	BoardChanged(b *Board)
}

// NotifierFunc adapts a plain function to Notifier.
type NotifierFunc func(b *Board)

// BoardChanged calls f(b).
func (f NotifierFunc) BoardChanged(b *Board) { f(b) }

type nopNotifier struct{}

func (nopNotifier) BoardChanged(*Board) {}
