package analytics

import (
	"errors"
	"fmt"
)

// ErrDataIntegrity is returned when a deal carries a direction code that is
// neither entry nor exit. The whole batch is rejected.
var ErrDataIntegrity = errors.New("deal data integrity error")

type DataIntegrityError struct {
	Ticket uint64
	Code   int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("%s: deal %d has unknown entry code %d", ErrDataIntegrity, e.Ticket, e.Code)
}

func (e *DataIntegrityError) Unwrap() error {
	return ErrDataIntegrity
}
