package launcher

import "errors"

var (
	// ErrSpawn се връща когато selector процесът не може да бъде стартиран
	ErrSpawn = errors.New("failed to start selector")

	// ErrPipe се връща когато писането към stdin на selector-а се провали
	ErrPipe = errors.New("selector pipe failed")

	// ErrNoLauncher се връща когато няма наличен selector
	ErrNoLauncher = errors.New("no selector available - please install rofi or run from a terminal")

	// ErrUnknownLauncher се връща за непознато име на selector
	ErrUnknownLauncher = errors.New("unknown selector")
)
