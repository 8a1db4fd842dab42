package ds

type Stack[T comparable] struct {
	slice []T
}

func NewStack[T comparable]() *Stack[T] {
	return &Stack[T]{
		slice: make([]T, 0),
	}
}

func (r *Stack[T]) Len() int {
	return len(r.slice)
}

func (r *Stack[T]) Push(t T) T {
	r.slice = append(r.slice, t)
	return t
}

func (r *Stack[T]) Pop() T {
	last := r.slice[r.Len()-1]
	r.slice = r.slice[:r.Len()-1]
	return last
}

func (r *Stack[T]) Peek() T {
	last := r.slice[r.Len()-1]
	return last
}

func (r *Stack[T]) Contains(t T) bool {
	for _, item := range r.slice {
		if item == t {
			return true
		}
	}
	return false
}

// Items returns the stack content from bottom to top.
func (r *Stack[T]) Items() []T {
	return ShallowCopy(r.slice)
}
