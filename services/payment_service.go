package services

import (
	"gorm.io/gorm"

	"github.com/gaurabwebdev/bistro-boss-server/entity"
	"github.com/gaurabwebdev/bistro-boss-server/repository"
)

// PaymentService creates gateway intents and records completed payments.
type PaymentService struct {
	db          *gorm.DB
	paymentRepo *repository.PaymentRepository
	cartRepo    *repository.CartRepository
	gateway     IntentCreator
}

func NewPaymentService(db *gorm.DB, payments *repository.PaymentRepository, carts *repository.CartRepository, gateway IntentCreator) *PaymentService {
	return &PaymentService{
		db:          db,
		paymentRepo: payments,
		cartRepo:    carts,
		gateway:     gateway,
	}
}

// CartAmount converts a price to the gateway's minor currency unit.
func CartAmount(price float64) int64 {
	return int64(price * 100)
}

// CreateIntent asks the gateway for a payment intent over the given total and
// returns the client secret the frontend completes the charge with.
func (s *PaymentService) CreateIntent(totalPrice float64) (string, error) {
	return s.gateway.CreateIntent(CartAmount(totalPrice), "usd")
}

// Record inserts the payment and purges the settled cart rows as one unit.
// The transaction rolls the insert back if the purge fails.
func (s *PaymentService) Record(p *entity.Payment) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.paymentRepo.Create(tx, p); err != nil {
			return err
		}
		n, err := s.cartRepo.DeleteByIDs(tx, p.CartProductIDs)
		if err != nil {
			return err
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
