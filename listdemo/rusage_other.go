//go:build !linux && !darwin

package main

import (
	"errors"
	"runtime"
)

func maxRSS() (uint64, error) {
	return 0, errors.New("not implemented on " + runtime.GOOS)
}
