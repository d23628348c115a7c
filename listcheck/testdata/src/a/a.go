package a

import (
	"errors"

	"example.com/seq"
)

func f() error {
	var l seq.List[int]
	l.InsertHead(1)
	l.InsertAt(2, 2)   // want `error result of InsertAt is not checked`
	_ = l.DeleteAt(1)  // want `error result of DeleteAt is not checked \(assigned to _\)`
	l.PopHead()        // want `error result of PopHead is not checked`
	seq.Check(&l)      // want `error result of Check is not checked`
	seq.Check[int](&l) // want `error result of Check is not checked`
	if err := l.InsertAt(1, 0); err != nil {
		return err
	}
	v, err := l.PopHead()
	_ = v
	errors.New("unrelated")
	return err
}
