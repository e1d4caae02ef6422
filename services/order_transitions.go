package services

import (
	"github.com/DonAdhyatma/fe-final-project/entity"
	"gorm.io/gorm"
)

// allowedTransitions is the order lifecycle:
// pending -> processing -> completed, with cancellation possible until the
// order is completed.
var allowedTransitions = map[string][]string{
	entity.OrderStatusPending:    {entity.OrderStatusProcessing, entity.OrderStatusCancelled},
	entity.OrderStatusProcessing: {entity.OrderStatusCompleted, entity.OrderStatusCancelled},
}

func ValidStatusTransition(from, to string) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// UpdateStatus moves an order along the lifecycle. The repository guard makes
// the flip conditional on the current status, so two terminals racing on the
// same order cannot both win.
func (s *OrderService) UpdateStatus(orderID uint, to string) (*entity.Order, error) {
	o, err := s.Repo.FindByID(orderID)
	if err != nil {
		return nil, err
	}
	if !ValidStatusTransition(o.Status, to) {
		return nil, ErrBadTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrBadTransition
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.Status = to
	s.notify("order_status", o)
	return o, nil
}

func (s *OrderService) Cancel(orderID uint) (*entity.Order, error) {
	return s.UpdateStatus(orderID, entity.OrderStatusCancelled)
}
