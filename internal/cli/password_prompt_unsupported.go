//go:build !windows && !linux && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly

package cli

import (
	"errors"
	"os"
)

func suppressEcho(_ *os.File) (func(), error) {
	return nil, errors.New("unsupported platform")
}
