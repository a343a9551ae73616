package core

import "errors"

var (
	// ErrAllocation is returned if the line buffer can't be created.
	ErrAllocation = errors.New("line buffer allocation failed")

	// ErrRead is returned when input ends or can't be read.
	ErrRead = errors.New("error reading line")

	// ErrLineTooLong is returned for lines that don't fit the line buffer.
	// The whole line is consumed so the next read starts on a fresh line.
	ErrLineTooLong = errors.New("line too long")

	// ErrSpawn is returned if a child process couldn't be created.
	ErrSpawn = errors.New("couldn't create child process")
)
