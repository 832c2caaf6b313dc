package models

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price" validate:"required,gte=1"`
}

type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
