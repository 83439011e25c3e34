package inquiry

import "github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"

// CreateInquiryRequest represents a public contact form submission.
type CreateInquiryRequest struct {
	SenderName  string `json:"sender_name" binding:"required,min=2,max=150"`
	SenderEmail string `json:"sender_email" binding:"required,email,max=255"`
	SenderPhone string `json:"sender_phone" binding:"omitempty,min=6,max=30"`
	Subject     string `json:"subject" binding:"required,min=2,max=200"`
	Message     string `json:"message" binding:"required,min=10"`
}

// UpdateStatusRequest marks how far an inquiry has been handled.
type UpdateStatusRequest struct {
	Status domain.InquiryStatus `json:"status" binding:"required"`
}
