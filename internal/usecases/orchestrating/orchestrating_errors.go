package orchestrating

import "errors"

var (
	ErrInvalidInput   = errors.New("invalid batch input")
	ErrAlreadyRunning = errors.New("sale is already running")
)
