package services

import (
	"dineinn/entity"

	"gorm.io/gorm"
)

// UpdateStatus advances an order owned by one of the caller's
// restaurants. The target must be a known status and reachable from the
// current status via the transition table; anything else is rejected
// without touching the row. The actual flip is a compare-and-swap on the
// current status, so two admins racing on the same order cannot both win.
func (s *OrderService) UpdateStatus(ownerID, orderID uint, target entity.OrderStatus) (*entity.Order, error) {
	if !target.Valid() || target == entity.StatusPlaced {
		return nil, ErrUnknownStatus
	}

	var out *entity.Order
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		o, err := s.Repo.GetOrder(orderID)
		if err != nil {
			return ErrOrderNotFound
		}
		ok, err := s.RestRepo.IsOwnedBy(o.RestaurantID, ownerID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrForbidden
		}
		if !o.Status.CanTransitionTo(target) {
			return ErrBadTransition
		}

		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, target)
		if err != nil {
			return err
		}
		if affected == 0 {
			// lost a race with another admin; prior state no longer holds
			return ErrBadTransition
		}
		o.Status = target
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
