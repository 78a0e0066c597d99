package app

import "errors"

// Application errors.
var (
	// ErrQuit signals that the application should exit normally.
	ErrQuit = errors.New("quit requested")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")

	// ErrNothingToFold indicates the cursor line has no deeper indented
	// block below it.
	ErrNothingToFold = errors.New("nothing to fold")

	// ErrNotFolded indicates no hidden range starts below the cursor line.
	ErrNotFolded = errors.New("no fold at cursor")
)
