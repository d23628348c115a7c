package seq

import "errors"

type List[T any] struct{ vs []T }

func (l *List[T]) InsertHead(v T) { l.vs = append([]T{v}, l.vs...) }

func (l *List[T]) InsertAt(pos int, v T) error {
	if pos < 1 || pos > len(l.vs)+1 {
		return errors.New("out of range")
	}
	return nil
}

func (l *List[T]) DeleteAt(pos int) error { return nil }

func (l *List[T]) PopHead() (T, error) {
	var zero T
	return zero, nil
}

func Check[T any](l *List[T]) error { return nil }
