package inquiry

import (
	"context"
	"fmt"
	"strings"

	"github.com/Drenzzz/mitra-wiradoor-sumbar-sub001/internal/domain"
)

// Service defines the inquiry business operations.
type Service interface {
	Submit(ctx context.Context, req CreateInquiryRequest) (*domain.Inquiry, error)
	GetInquiry(ctx context.Context, id uint) (*domain.Inquiry, error)
	ListInquiries(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Inquiry], error)
	UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) (*domain.Inquiry, error)
	DeleteInquiry(ctx context.Context, id uint) error
}

type inquiryService struct {
	inquiries domain.InquiryRepository
}

// NewService creates an inquiry Service over the given repository.
func NewService(inquiries domain.InquiryRepository) Service {
	return &inquiryService{inquiries: inquiries}
}

// Submit records a contact form submission. New inquiries always start in NEW.
func (s *inquiryService) Submit(ctx context.Context, req CreateInquiryRequest) (*domain.Inquiry, error) {
	inquiry := &domain.Inquiry{
		SenderName:  strings.TrimSpace(req.SenderName),
		SenderEmail: strings.TrimSpace(req.SenderEmail),
		SenderPhone: strings.TrimSpace(req.SenderPhone),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
		Status:      domain.InquiryStatusNew,
	}

	if err := s.inquiries.Create(ctx, inquiry); err != nil {
		return nil, err
	}
	return inquiry, nil
}

func (s *inquiryService) GetInquiry(ctx context.Context, id uint) (*domain.Inquiry, error) {
	return s.inquiries.GetByID(ctx, id)
}

func (s *inquiryService) ListInquiries(ctx context.Context, opts domain.ListOptions) (*domain.PageResult[domain.Inquiry], error) {
	return s.inquiries.List(ctx, opts)
}

func (s *inquiryService) UpdateStatus(ctx context.Context, id uint, req UpdateStatusRequest) (*domain.Inquiry, error) {
	if !req.Status.Valid() {
		return nil, domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("unknown inquiry status %q", req.Status), nil)
	}

	if err := s.inquiries.UpdateStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	return s.inquiries.GetByID(ctx, id)
}

func (s *inquiryService) DeleteInquiry(ctx context.Context, id uint) error {
	return s.inquiries.Delete(ctx, id)
}
