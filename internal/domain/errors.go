package domain

import "errors"

var (
	ErrArchiveBusy        = errors.New("record archive is busy")
	ErrCACertsUnavailable = errors.New("root CA certificates unavailable")
	ErrNoChannels         = errors.New("no channels given")
	ErrNotConnected       = errors.New("not connected")
)
