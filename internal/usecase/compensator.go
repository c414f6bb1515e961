package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	"splitpay/internal/domain/entities"
	"splitpay/internal/usecase/interfaces"
)

// Compensation is the outcome of a compensation check.
type Compensation struct {
	RolledBack bool
	// FailedIndex and Response describe the first entry that did not succeed.
	FailedIndex int
	Response    entities.GatewayResponse
	// Err joins the errors returned by gateway rollbacks. They are surfaced,
	// never retried.
	Err error
}

// Compensator releases the instruments that succeeded in a phase once a
// sibling failed.
type Compensator struct {
	gateways map[entities.InstrumentType]interfaces.IPaymentGateway
}

func NewCompensator(gateways map[entities.InstrumentType]interfaces.IPaymentGateway) *Compensator {
	return &Compensator{gateways: gateways}
}

// Check scans entries in order for the first one whose result is not
// success. Unattempted entries count as failures here: the phase loop stops
// right after a failure, so the first non-success entry is always the one
// that failed. When one is found every successful entry is rolled back, in
// the original order, and RolledBack is true. Otherwise nothing is touched.
func (c *Compensator) Check(ctx context.Context, entries []entities.PaymentMethodEntry) Compensation {
	failed := -1
	for i := range entries {
		if !entries[i].Succeeded() {
			failed = i
			break
		}
	}
	if failed < 0 {
		return Compensation{FailedIndex: -1}
	}

	out := Compensation{RolledBack: true, FailedIndex: failed, Response: entries[failed].Response}
	var errs []error
	for i := range entries {
		e := entries[i]
		if !e.Succeeded() {
			continue
		}
		log.Printf("[payment][compensator] rollback index=%d type=%s amount=%s", i, e.Type, e.Amount)
		gw, ok := c.gateways[e.Type]
		if !ok {
			errs = append(errs, fmt.Errorf("rollback entry %d (%s): %w", i, e.Type, ErrGatewayNotConfigured))
			continue
		}
		if err := gw.Rollback(ctx, e.Response); err != nil {
			log.Printf("[payment][compensator] rollback failed index=%d type=%s err=%v", i, e.Type, err)
			errs = append(errs, fmt.Errorf("rollback entry %d (%s): %w", i, e.Type, err))
		}
	}
	out.Err = errors.Join(errs...)
	return out
}
