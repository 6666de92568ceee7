// internal/services/inquiry_service.go
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

const meetBaseURL = "https://meet.google.com/"

type InquiryService struct {
	store    store.Store
	notifier Notifier
	now      func() time.Time
	// notify runs a notification off the request path.
	notify func(fn func())
}

type CreateInquiryRequest struct {
	Name       string   `json:"name" validate:"required,min=2,max=100"`
	Email      string   `json:"email" validate:"required,email,max=255"`
	Company    string   `json:"company,omitempty" validate:"omitempty,max=255"`
	Phone      string   `json:"phone,omitempty" validate:"omitempty,max=50"`
	Message    string   `json:"message" validate:"required,min=10,max=5000"`
	ProductIDs []string `json:"product_ids,omitempty" validate:"omitempty,max=50,dive,len=24,hexadecimal"`
}

type CreateMeetingRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=100"`
	Email         string     `json:"email" validate:"required,email,max=255"`
	Company       string     `json:"company,omitempty" validate:"omitempty,max=255"`
	Phone         string     `json:"phone,omitempty" validate:"omitempty,max=50"`
	Message       string     `json:"message,omitempty" validate:"omitempty,max=5000"`
	ProductIDs    []string   `json:"product_ids,omitempty" validate:"omitempty,max=50,dive,len=24,hexadecimal"`
	PreferredTime *time.Time `json:"preferred_time" validate:"required"`
}

// normalizeContact trims the contact fields and lowercases the email so
// validation sees what will be stored.
func normalizeContact(name, email, company, phone, message *string) {
	for _, field := range []*string{name, company, phone, message} {
		*field = strings.TrimSpace(*field)
	}
	*email = strings.ToLower(strings.TrimSpace(*email))
}

type UpdateInquiryStatusRequest struct {
	Status models.InquiryStatus `json:"status" validate:"required,oneof=new contacted closed"`
}

type InquiryListParams struct {
	utils.PaginationParams
	Kind   models.InquiryKind
	Status models.InquiryStatus
}

func NewInquiryService(st store.Store, notifier Notifier) *InquiryService {
	return &InquiryService{
		store:    st,
		notifier: notifier,
		now:      time.Now,
		notify:   func(fn func()) { go fn() },
	}
}

func (s *InquiryService) CreateInquiry(ctx context.Context, req *CreateInquiryRequest) (*models.Inquiry, error) {
	normalizeContact(&req.Name, &req.Email, &req.Company, &req.Phone, &req.Message)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	inquiry := &models.Inquiry{
		Kind:       models.InquiryKindInquiry,
		Name:       utils.StripHTML(req.Name),
		Email:      req.Email,
		Company:    utils.StripHTML(req.Company),
		Phone:      utils.StripHTML(req.Phone),
		Message:    utils.StripHTML(req.Message),
		ProductIDs: models.StringList(req.ProductIDs),
		Status:     models.InquiryStatusNew,
	}
	return s.save(ctx, inquiry)
}

func (s *InquiryService) CreateMeeting(ctx context.Context, req *CreateMeetingRequest) (*models.Inquiry, error) {
	normalizeContact(&req.Name, &req.Email, &req.Company, &req.Phone, &req.Message)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if !req.PreferredTime.After(s.now()) {
		return nil, apperror.Invalid("preferred_time", "future", "preferred_time must be in the future")
	}

	code, err := utils.GenerateMeetCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate meeting link: %w", err)
	}

	preferred := req.PreferredTime.UTC()
	inquiry := &models.Inquiry{
		Kind:          models.InquiryKindMeeting,
		Name:          utils.StripHTML(req.Name),
		Email:         req.Email,
		Company:       utils.StripHTML(req.Company),
		Phone:         utils.StripHTML(req.Phone),
		Message:       utils.StripHTML(req.Message),
		ProductIDs:    models.StringList(req.ProductIDs),
		PreferredTime: &preferred,
		MeetLink:      meetBaseURL + code,
		Status:        models.InquiryStatusNew,
	}
	return s.save(ctx, inquiry)
}

func (s *InquiryService) save(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	if err := s.store.CreateInquiry(ctx, inquiry); err != nil {
		return nil, storageError("create inquiry", err)
	}

	products, err := s.store.GetProductsByIDs(ctx, inquiry.ProductIDs)
	if err != nil {
		logrus.WithError(err).Warn("Failed to load inquiry products for notification")
	}

	if s.notifier != nil {
		notified := *inquiry
		s.notify(func() {
			if err := s.notifier.NotifyInquiry(context.Background(), &notified, products); err != nil {
				logrus.WithError(err).WithField("inquiry_id", notified.ID).Error("Failed to send inquiry notification")
			}
		})
	}
	return inquiry, nil
}

func (s *InquiryService) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	inquiry, err := s.store.GetInquiry(ctx, id)
	if err != nil {
		return nil, storageError("get inquiry", err)
	}
	return inquiry, nil
}

func (s *InquiryService) ListInquiries(ctx context.Context, params InquiryListParams) ([]models.Inquiry, int64, error) {
	inquiries, total, err := s.store.ListInquiries(ctx, store.InquiryFilter{
		Page:   params.StorePage(),
		Kind:   params.Kind,
		Status: params.Status,
	})
	if err != nil {
		return nil, 0, storageError("list inquiries", err)
	}
	return inquiries, total, nil
}

func (s *InquiryService) UpdateStatus(ctx context.Context, id string, req *UpdateInquiryStatusRequest) (*models.Inquiry, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.store.UpdateInquiryStatus(ctx, id, req.Status); err != nil {
		return nil, storageError("update inquiry", err)
	}
	return s.GetInquiry(ctx, id)
}
