package service

import (
	"math"

	"github.com/skghosh/socialdev-backend/internal/models"
)

type PaymentService struct {
	gateway PaymentGateway
}

func NewPaymentService(gateway PaymentGateway) *PaymentService {
	return &PaymentService{
		gateway: gateway,
	}
}

// CreatePaymentIntent validates the amount, converts it to cents and asks
// the processor for a client secret. Nothing is persisted locally; the
// client reports the resulting transaction id when it joins the event.
func (s *PaymentService) CreatePaymentIntent(price float64) (*models.PaymentIntentResponse, error) {
	if price < 1 || math.IsNaN(price) {
		return nil, ErrInvalidAmount
	}

	amountCents := int64(math.Round(price * 100))

	clientSecret, err := s.gateway.CreatePaymentIntent(amountCents)
	if err != nil {
		return nil, err
	}

	return &models.PaymentIntentResponse{
		ClientSecret: clientSecret,
	}, nil
}
