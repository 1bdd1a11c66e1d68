package multicast

// Handler receives the arguments of one Invoke call.
// A returned error or a panic is reported as a Fault and does not stop dispatch.
type Handler[A any] interface {
	Handle(args A) error
}

// HandlerFunc is a function adapter for Handler.
type HandlerFunc[A any] func(args A) error

// Handle implements the Handler interface.
func (f HandlerFunc[A]) Handle(args A) error {
	return f(args)
}
