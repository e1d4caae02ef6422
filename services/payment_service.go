package services

import (
	"errors"

	"github.com/DonAdhyatma/fe-final-project/entity"
	"github.com/DonAdhyatma/fe-final-project/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInsufficientCash = errors.New("received amount does not cover the total")
	ErrAlreadyPaid      = errors.New("order already has a payment")
	ErrOrderNotPayable  = errors.New("only pending orders can be paid")
	ErrNotRefundable    = errors.New("only paid payments can be refunded")
)

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	Orders    *OrderService
}

func NewPaymentService(db *gorm.DB, repo *repository.PaymentRepository, orderRepo *repository.OrderRepository, orders *OrderService) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, Orders: orders}
}

// ChangeFor computes the change for a cash payment. The second return is
// false when the cash handed over does not cover the total.
func ChangeFor(total, received int64) (int64, bool) {
	if received < total {
		return 0, false
	}
	return received - total, true
}

type ProcessPaymentIn struct {
	OrderID  uint  `json:"orderId" binding:"required"`
	Received int64 `json:"received" binding:"required"`
}

// Process takes cash against a pending order: records the payment with a
// fresh reference and moves the order to processing.
func (s *PaymentService) Process(in *ProcessPaymentIn) (*entity.Payment, error) {
	order, err := s.OrderRepo.FindByID(in.OrderID)
	if err != nil {
		return nil, err
	}
	if order.Status != entity.OrderStatusPending {
		return nil, ErrOrderNotPayable
	}
	if _, err := s.Repo.FindByOrderID(order.ID); err == nil {
		return nil, ErrAlreadyPaid
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	change, ok := ChangeFor(order.Total, in.Received)
	if !ok {
		return nil, ErrInsufficientCash
	}

	payment := &entity.Payment{
		Reference: uuid.NewString(),
		OrderID:   order.ID,
		Method:    entity.PaymentMethodCash,
		Amount:    order.Total,
		Received:  in.Received,
		Change:    change,
		Status:    entity.PaymentStatusPaid,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.Create(tx, payment); err != nil {
			return err
		}
		affected, err := s.OrderRepo.UpdateStatusGuard(tx, order.ID, entity.OrderStatusPending, entity.OrderStatusProcessing)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrOrderNotPayable
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order.Status = entity.OrderStatusProcessing
	if s.Orders != nil {
		s.Orders.notify("order_status", order)
	}
	return payment, nil
}

func (s *PaymentService) ByOrderID(orderID uint) (*entity.Payment, error) {
	return s.Repo.FindByOrderID(orderID)
}

// Refund flips a paid payment to refunded and cancels its order.
func (s *PaymentService) Refund(paymentID uint) (*entity.Payment, error) {
	payment, err := s.Repo.FindByID(paymentID)
	if err != nil {
		return nil, err
	}
	if payment.Status != entity.PaymentStatusPaid {
		return nil, ErrNotRefundable
	}

	order, err := s.OrderRepo.FindByID(payment.OrderID)
	if err != nil {
		return nil, err
	}
	if !ValidStatusTransition(order.Status, entity.OrderStatusCancelled) {
		return nil, ErrBadTransition
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.UpdateStatus(tx, payment.ID, entity.PaymentStatusRefunded); err != nil {
			return err
		}
		affected, err := s.OrderRepo.UpdateStatusGuard(tx, order.ID, order.Status, entity.OrderStatusCancelled)
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

	payment.Status = entity.PaymentStatusRefunded
	order.Status = entity.OrderStatusCancelled
	if s.Orders != nil {
		s.Orders.notify("order_status", order)
	}
	return payment, nil
}
