package usecases

import (
	"repair-server/repositories"

	"github.com/pkg/errors"
)

// Error classes returned by every use case. Callers match them with
// errors.Is; the wrapped message names the record involved.
var (
	ErrNotFound          = errors.New("not found")
	ErrReferenceNotFound = errors.New("referenced entity not found")
	ErrDuplicate         = errors.New("duplicate entity")
	ErrNoMatch           = errors.New("no match")
	ErrValidation        = errors.New("invalid request")
)

// storeError converts repository sentinels into use case errors.
func storeError(err error, kind, id string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return errors.Wrapf(ErrNotFound, "%s %s", kind, id)
	case errors.Is(err, repositories.ErrDuplicateKey):
		return errors.Wrapf(ErrDuplicate, "%s already registered", kind)
	}
	return errors.Wrapf(err, "%s store failure", kind)
}
