package loader

// Loader is the caller-facing surface shared by every loader variant.
type Loader interface {
	Start(message string)
	Stop() error
	UpdateMessage(text string)
}

var _ Loader = (*Engine)(nil)

// WithLoader shows l with message while fn runs. The loader is always stopped,
// also when fn panics. fn's error takes precedence over a failure to stop.
func WithLoader(l Loader, message string, fn func() error) (err error) {
	l.Start(message)
	defer func() {
		if stopErr := l.Stop(); err == nil {
			err = stopErr
		}
	}()

	return fn()
}
