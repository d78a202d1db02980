package email

import (
	"context"

	"github.com/ecobarangay/wasteops/internal/application/maintenance/usecases"
)

// OutcomeObserver counts delivery outcomes.
type OutcomeObserver interface {
	ObserveEmail(outcome string)
}

// ObservedNotifier reports every delivery attempt of next to an observer.
type ObservedNotifier struct {
	next     usecases.AssignmentNotifier
	observer OutcomeObserver
}

func NewObservedNotifier(next usecases.AssignmentNotifier, observer OutcomeObserver) *ObservedNotifier {
	return &ObservedNotifier{next: next, observer: observer}
}

func (n *ObservedNotifier) NotifyAssignment(ctx context.Context, notice usecases.AssignmentNotice) error {
	err := n.next.NotifyAssignment(ctx, notice)
	if err != nil {
		n.observer.ObserveEmail("failed")
		return err
	}
	n.observer.ObserveEmail("sent")
	return nil
}
