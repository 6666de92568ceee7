// internal/store/mongostore/inquiry.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) CreateInquiry(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.Touch(s.now())
	_, err := s.collection(inquiriesCollection).InsertOne(ctx, inquiry)
	return translate(err)
}

func (s *Store) GetInquiry(ctx context.Context, id string) (*models.Inquiry, error) {
	return findOne[models.Inquiry](ctx, s.collection(inquiriesCollection), idFilter(id))
}

func (s *Store) ListInquiries(ctx context.Context, filter store.InquiryFilter) ([]models.Inquiry, int64, error) {
	return findPage[models.Inquiry](ctx, s.collection(inquiriesCollection), inquiryFilter(filter), filter.Page, newestFirst)
}

func (s *Store) UpdateInquiryStatus(ctx context.Context, id string, status models.InquiryStatus) error {
	return updateByID(ctx, s.collection(inquiriesCollection), id, bson.M{"status": status, "updated_at": s.now()})
}

func (s *Store) CreateSampleOrder(ctx context.Context, order *models.SampleOrder) error {
	order.Touch(s.now())
	_, err := s.collection(sampleOrdersCollection).InsertOne(ctx, order)
	return translate(err)
}

func (s *Store) GetSampleOrder(ctx context.Context, id string) (*models.SampleOrder, error) {
	return findOne[models.SampleOrder](ctx, s.collection(sampleOrdersCollection), idFilter(id))
}

func (s *Store) ListSampleOrders(ctx context.Context, filter store.SampleOrderFilter) ([]models.SampleOrder, int64, error) {
	return findPage[models.SampleOrder](ctx, s.collection(sampleOrdersCollection), sampleOrderFilter(filter), filter.Page, newestFirst)
}

func (s *Store) UpdateSampleOrder(ctx context.Context, order *models.SampleOrder) error {
	order.UpdatedAt = s.now()
	return translate(replaceByID(ctx, s.collection(sampleOrdersCollection), order.ID, order))
}
