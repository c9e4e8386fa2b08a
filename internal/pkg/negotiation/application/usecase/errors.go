package usecase

import (
	apperrors "github.com/luizfilipeschaeffer/omni/pkg/errors"
)

// storeErr passes coded application errors through untouched and wraps raw
// infrastructure failures as INTERNAL so controllers can tell a retryable
// store failure from a protocol rejection.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	if apperrors.CodeOf(err) != apperrors.CodeUnknown {
		return err
	}
	return apperrors.ErrStore(err)
}
