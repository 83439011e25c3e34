package domain

import "context"

// InquiryStatus tracks how far an admin has handled a contact inquiry.
type InquiryStatus string

const (
	InquiryStatusNew     InquiryStatus = "NEW"
	InquiryStatusRead    InquiryStatus = "READ"
	InquiryStatusReplied InquiryStatus = "REPLIED"
)

// InquiryStatuses lists all valid inquiry statuses.
var InquiryStatuses = []InquiryStatus{
	InquiryStatusNew,
	InquiryStatusRead,
	InquiryStatusReplied,
}

// Valid reports whether s is one of the known inquiry statuses.
// Statuses may be set directly in any order; only enum membership is checked.
func (s InquiryStatus) Valid() bool {
	for _, known := range InquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Inquiry is a message submitted through the public contact form.
type Inquiry struct {
	BaseModel
	SenderName  string        `gorm:"size:150;not null" json:"sender_name"`
	SenderEmail string        `gorm:"size:255;not null" json:"sender_email"`
	SenderPhone string        `gorm:"size:30" json:"sender_phone"`
	Subject     string        `gorm:"size:200;not null" json:"subject"`
	Message     string        `gorm:"type:text;not null" json:"message"`
	Status      InquiryStatus `gorm:"size:20;not null;index" json:"status"`
}

// InquiryRepository defines the data access interface for inquiries.
// Inquiries have no trash tier: Delete removes the row permanently.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	GetByID(ctx context.Context, id uint) (*Inquiry, error)
	List(ctx context.Context, opts ListOptions) (*PageResult[Inquiry], error)
	UpdateStatus(ctx context.Context, id uint, status InquiryStatus) error
	Delete(ctx context.Context, id uint) error
}
