// internal/store/gormstore/inquiry.go
package gormstore

import (
	"context"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	return translate(s.db.WithContext(ctx).Create(inquiry).Error)
}

func (s *Store) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	var inquiry models.Inquiry
	if err := s.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &inquiry, nil
}

func (s *Store) ListInquiries(ctx context.Context, filter store.InquiryFilter) ([]models.Inquiry, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Inquiry{})
	if filter.Kind != "" {
		query = query.Where("kind = ?", filter.Kind)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var inquiries []models.Inquiry
	if err := paginate(query, filter.Page).Order("created_at DESC").Find(&inquiries).Error; err != nil {
		return nil, 0, err
	}
	return inquiries, total, nil
}

func (s *Store) UpdateInquiryStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	result := s.db.WithContext(ctx).Model(&models.Inquiry{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) CreateSampleOrder(ctx context.Context, order *models.SampleOrder) error {
	return translate(s.db.WithContext(ctx).Create(order).Error)
}

func (s *Store) GetSampleOrder(ctx context.Context, id string) (*models.SampleOrder, error) {
	var order models.SampleOrder
	if err := s.db.WithContext(ctx).First(&order, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &order, nil
}

func (s *Store) ListSampleOrders(ctx context.Context, filter store.SampleOrderFilter) ([]models.SampleOrder, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.SampleOrder{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Email != "" {
		query = query.Where("email = ?", filter.Email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.SampleOrder
	if err := paginate(query, filter.Page).Order("created_at DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (s *Store) UpdateSampleOrder(ctx context.Context, order *models.SampleOrder) error {
	return translate(s.db.WithContext(ctx).Save(order).Error)
}
