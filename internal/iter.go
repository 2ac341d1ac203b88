// Package internal holds iterator helpers for table and image walks.
package internal

import (
	"iter"
)

// Concat yields every value of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Concat2 yields every pair of each sequence in turn.
func Concat2[K any, V any](seqs ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, seq := range seqs {
			for key, val := range seq {
				if !yield(key, val) {
					return
				}
			}
		}
	}
}

// Fill yields value for the indexes from first up to, not including, last.
// Each index is scaled by stride to form the key.
func Fill[V any](first, last int, stride uint32, value V) iter.Seq2[uint32, V] {
	return func(yield func(uint32, V) bool) {
		for n := first; n < last; n++ {
			if !yield(uint32(n)*stride, value) {
				return
			}
		}
	}
}
