package procs

// Proc is one unit of work. Run returns the proc to continue with, or nil
// when done.
type Proc[C any] interface {
	Run(ctx C) (Proc[C], error)
}

type Func[C any] func(ctx C) (Proc[C], error)

var _ Proc[any] = Func[any](nil)

func (f Func[C]) Run(ctx C) (Proc[C], error) {
	return f(ctx)
}

// Once wraps fn as a proc that finishes after a single run.
func Once[C any](fn func(ctx C) error) Proc[C] {
	return Func[C](func(ctx C) (Proc[C], error) {
		return nil, fn(ctx)
	})
}

// Drain runs proc until it finishes or fails.
func Drain[C any](ctx C, proc Proc[C]) error {
	for proc != nil {
		next, err := proc.Run(ctx)
		if err != nil {
			return err
		}
		proc = next
	}
	return nil
}
