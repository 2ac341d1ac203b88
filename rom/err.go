package rom

import (
	"errors"

	"github.com/ezrec/charis/translate"
)

var f = translate.From

var (
	ErrImageFull = errors.New(f("image full"))
)

// ErrLine is a failure of a single input line.
type ErrLine struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrLine) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrLine) Unwrap() error {
	return err.Err
}
