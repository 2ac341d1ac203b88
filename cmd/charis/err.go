package main

import (
	"errors"

	"github.com/ezrec/charis/translate"
)

var f = translate.From

var (
	ErrModeConflict = errors.New(f("please supply -a OR -d, not both"))
	ErrModeMissing  = errors.New(f("please supply -a or -d"))
	ErrArguments    = errors.New(f("exactly one file to process is required"))
)
