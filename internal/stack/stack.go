package stack

import "errors"

var ErrEmpty = errors.New("empty stack")

// S is a slice-backed LIFO stack. The zero value is an empty
// stack that is ready to use.
type S[T any] struct {
	elements []T
}

func (this *S[T]) Push(item T) {
	this.elements = append(this.elements, item)
}

func (this *S[T]) Pop() (T, error) {
	var item T
	if len(this.elements) == 0 {
		return item, ErrEmpty
	}
	index := len(this.elements) - 1
	item = this.elements[index]
	this.elements = this.elements[:index]
	return item, nil
}

func (this *S[T]) Peek() (T, error) {
	var item T
	if len(this.elements) == 0 {
		return item, ErrEmpty
	}
	return this.elements[len(this.elements)-1], nil
}

func (this *S[T]) IsEmpty() bool {
	return len(this.elements) == 0
}

func (this *S[T]) Size() int {
	return len(this.elements)
}

func (this *S[T]) Clear() {
	this.elements = this.elements[:0]
}
