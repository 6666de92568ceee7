// internal/services/admin_service.go
package services

import (
	"context"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

type AdminService struct {
	store store.Store
}

type AdminDashboardStats struct {
	SlugCoverage          []models.SlugCounts `json:"slug_coverage"`
	ActiveProducts        int64               `json:"active_products"`
	ActiveCategories      int64               `json:"active_categories"`
	ActiveRedirects       int64               `json:"active_redirects"`
	NewInquiries          int64               `json:"new_inquiries"`
	NewMeetings           int64               `json:"new_meetings"`
	PendingSampleOrders   int64               `json:"pending_sample_orders"`
	AwaitingPaymentOrders int64               `json:"awaiting_payment_orders"`
}

func NewAdminService(st store.Store) *AdminService {
	return &AdminService{store: st}
}

// one row is enough to learn the total
var countOnly = store.Page{Limit: 1}

func (s *AdminService) GetDashboardStats(ctx context.Context) (*AdminDashboardStats, error) {
	stats := &AdminDashboardStats{}

	for _, t := range models.SluggableTypes() {
		counts, err := s.store.SlugCounts(ctx, t)
		if err != nil {
			return nil, storageError("count slugs", err)
		}
		stats.SlugCoverage = append(stats.SlugCoverage, *counts)
	}

	var err error
	if _, stats.ActiveProducts, err = s.store.ListProducts(ctx, store.ProductFilter{Page: countOnly, ActiveOnly: true}); err != nil {
		return nil, storageError("count products", err)
	}
	if _, stats.ActiveCategories, err = s.store.ListCategories(ctx, store.CategoryFilter{Page: countOnly, ActiveOnly: true}); err != nil {
		return nil, storageError("count categories", err)
	}

	active := true
	if _, stats.ActiveRedirects, err = s.store.ListRedirects(ctx, store.RedirectFilter{Page: countOnly, Active: &active}); err != nil {
		return nil, storageError("count redirects", err)
	}

	if _, stats.NewInquiries, err = s.store.ListInquiries(ctx, store.InquiryFilter{
		Page:   countOnly,
		Kind:   models.InquiryKindInquiry,
		Status: models.InquiryStatusNew,
	}); err != nil {
		return nil, storageError("count inquiries", err)
	}
	if _, stats.NewMeetings, err = s.store.ListInquiries(ctx, store.InquiryFilter{
		Page:   countOnly,
		Kind:   models.InquiryKindMeeting,
		Status: models.InquiryStatusNew,
	}); err != nil {
		return nil, storageError("count meetings", err)
	}

	if _, stats.PendingSampleOrders, err = s.store.ListSampleOrders(ctx, store.SampleOrderFilter{
		Page:   countOnly,
		Status: models.SampleOrderStatusPending,
	}); err != nil {
		return nil, storageError("count sample orders", err)
	}
	if _, stats.AwaitingPaymentOrders, err = s.store.ListSampleOrders(ctx, store.SampleOrderFilter{
		Page:   countOnly,
		Status: models.SampleOrderStatusAwaitingPayment,
	}); err != nil {
		return nil, storageError("count sample orders", err)
	}

	return stats, nil
}
