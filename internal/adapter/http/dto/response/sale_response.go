package response

import (
	"time"

	"pdv_xpto/internal/domain/entities"
)

type SaleResponse struct {
	ID                 string    `json:"id"`
	SaleNumber         string    `json:"sale_number"`
	TotalAmount        float64   `json:"total_amount"`
	DiscountPercentage float64   `json:"discount_percentage"`
	DiscountAmount     float64   `json:"discount_amount"`
	FinalAmount        float64   `json:"final_amount"`
	PaymentMethod      string    `json:"payment_method"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

func FromSale(s entities.Sale) SaleResponse {
	return SaleResponse{
		ID:                 s.ID,
		SaleNumber:         s.SaleNumber,
		TotalAmount:        roundMoney(s.TotalAmount),
		DiscountPercentage: s.DiscountPercentage,
		DiscountAmount:     roundMoney(s.DiscountAmount),
		FinalAmount:        roundMoney(s.FinalAmount),
		PaymentMethod:      string(s.PaymentMethod),
		Notes:              s.Notes,
		CreatedAt:          s.CreatedAt,
	}
}
