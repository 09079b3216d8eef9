package keyfile

import "errors"

var (
	// ErrEmptyKeyFile is returned when the key file has no bytes to process.
	ErrEmptyKeyFile = errors.New("keyfile: key file is empty")

	// ErrDatabaseFile is returned when the selected file carries a known
	// database container signature and the database check was requested.
	ErrDatabaseFile = errors.New("keyfile: selected file is a database, not a key file")

	// ErrRandomSource is returned when the secure random source cannot
	// produce key material during creation.
	ErrRandomSource = errors.New("keyfile: random source failed")
)

// IsEmptyKeyFile returns true if the error is or wraps ErrEmptyKeyFile.
func IsEmptyKeyFile(err error) bool {
	return errors.Is(err, ErrEmptyKeyFile)
}

// IsDatabaseFile returns true if the error is or wraps ErrDatabaseFile.
func IsDatabaseFile(err error) bool {
	return errors.Is(err, ErrDatabaseFile)
}

// IsRandomSource returns true if the error is or wraps ErrRandomSource.
func IsRandomSource(err error) bool {
	return errors.Is(err, ErrRandomSource)
}
