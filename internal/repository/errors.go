package repository

import "errors"

// ErrDuplicateEmail is returned by UserRepository.Create when the email
// unique constraint rejects the write.
var ErrDuplicateEmail = errors.New("email already exists")
