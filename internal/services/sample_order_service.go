// internal/services/sample_order_service.go
package services

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type SampleOrderService struct {
	store    store.Store
	gateway  PaymentGateway
	notifier Notifier
	currency string
	now      func() time.Time
	notify   func(fn func())
}

type SampleItemRequest struct {
	ProductID string `json:"product_id" validate:"required,len=24,hexadecimal"`
	Quantity  int    `json:"quantity" validate:"required,min=1,max=10"`
}

type CreateSampleOrderRequest struct {
	ContactName     string              `json:"contact_name" validate:"required,min=2,max=100"`
	Email           string              `json:"email" validate:"required,email,max=255"`
	Company         string              `json:"company,omitempty" validate:"omitempty,max=255"`
	Phone           string              `json:"phone,omitempty" validate:"omitempty,max=50"`
	ShippingAddress string              `json:"shipping_address" validate:"required,min=10,max=1000"`
	Items           []SampleItemRequest `json:"items" validate:"required,min=1,max=20,unique=ProductID,dive"`
}

type UpdateSampleOrderStatusRequest struct {
	Status models.SampleOrderStatus `json:"status" validate:"required,oneof=pending awaiting_payment paid cancelled"`
}

type SampleOrderListParams struct {
	utils.PaginationParams
	Status models.SampleOrderStatus
	Email  string
}

func NewSampleOrderService(st store.Store, gateway PaymentGateway, notifier Notifier, currency string) *SampleOrderService {
	if currency == "" {
		currency = "usd"
	}
	return &SampleOrderService{
		store:    st,
		gateway:  gateway,
		notifier: notifier,
		currency: strings.ToLower(currency),
		now:      time.Now,
		notify:   func(fn func()) { go fn() },
	}
}

// Checkout prices the cart from stored sample prices, persists the order and,
// when a gateway is configured, opens a payment intent for it.
func (s *SampleOrderService) Checkout(ctx context.Context, req *CreateSampleOrderRequest) (*models.SampleOrder, error) {
	normalizeContact(&req.ContactName, &req.Email, &req.Company, &req.Phone, &req.ShippingAddress)
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	items, total, err := s.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &models.SampleOrder{
		OrderNumber:     utils.GenerateOrderNumber(s.now()),
		ContactName:     utils.StripHTML(req.ContactName),
		Email:           req.Email,
		Company:         utils.StripHTML(req.Company),
		Phone:           utils.StripHTML(req.Phone),
		ShippingAddress: utils.StripHTML(req.ShippingAddress),
		Items:           items,
		Total:           total,
		Currency:        s.currency,
		Status:          models.SampleOrderStatusPending,
	}

	if err := s.store.CreateSampleOrder(ctx, order); err != nil {
		return nil, storageError("create sample order", err)
	}

	if s.gateway != nil && order.Total > 0 {
		s.attachPayment(ctx, order)
	}

	if s.notifier != nil {
		notified := *order
		notified.ClientSecret = ""
		s.notify(func() {
			if err := s.notifier.NotifySampleOrder(context.Background(), &notified); err != nil {
				logrus.WithError(err).WithField("order_id", notified.ID).Error("Failed to send sample order notification")
			}
		})
	}

	return order, nil
}

// attachPayment leaves the order pending when the gateway fails; sales can
// still invoice it manually.
func (s *SampleOrderService) attachPayment(ctx context.Context, order *models.SampleOrder) {
	intent, err := s.gateway.CreatePaymentIntent(ctx, order)
	if err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("Failed to create payment intent, order left pending")
		return
	}

	order.PaymentIntentID = intent.ID
	order.Status = models.SampleOrderStatusAwaitingPayment
	if err := s.store.UpdateSampleOrder(ctx, order); err != nil {
		logrus.WithError(err).WithField("order_id", order.ID).Error("Failed to save payment intent on order")
		order.PaymentIntentID = ""
		order.Status = models.SampleOrderStatusPending
		return
	}
	order.ClientSecret = intent.ClientSecret
}

func (s *SampleOrderService) priceItems(ctx context.Context, reqItems []SampleItemRequest) (models.SampleOrderItems, float64, error) {
	ids := make([]string, len(reqItems))
	for i, item := range reqItems {
		ids[i] = item.ProductID
	}

	products, err := s.store.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, 0, storageError("load products", err)
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	var (
		items  = make(models.SampleOrderItems, 0, len(reqItems))
		total  float64
		fields []apperror.FieldError
	)
	for i, item := range reqItems {
		product, ok := byID[item.ProductID]
		if !ok || !product.IsActive {
			fields = append(fields, apperror.FieldError{
				Field:   fmt.Sprintf("items[%d].product_id", i),
				Tag:     "exists",
				Message: "product is not available for sampling",
			})
			continue
		}
		items = append(items, models.SampleOrderItem{
			ProductID:   product.ID,
			ProductSlug: product.Slug,
			Name:        product.Name,
			Quantity:    item.Quantity,
			UnitPrice:   product.SamplePrice,
		})
		total += product.SamplePrice * float64(item.Quantity)
	}

	if len(fields) > 0 {
		return nil, 0, &apperror.ValidationError{Message: fields[0].Message, Fields: fields}
	}
	return items, math.Round(total*100) / 100, nil
}

func (s *SampleOrderService) GetSampleOrder(ctx context.Context, id string) (*models.SampleOrder, error) {
	order, err := s.store.GetSampleOrder(ctx, id)
	if err != nil {
		return nil, storageError("get sample order", err)
	}
	return order, nil
}

func (s *SampleOrderService) ListSampleOrders(ctx context.Context, params SampleOrderListParams) ([]models.SampleOrder, int64, error) {
	orders, total, err := s.store.ListSampleOrders(ctx, store.SampleOrderFilter{
		Page:   params.StorePage(),
		Status: params.Status,
		Email:  params.Email,
	})
	if err != nil {
		return nil, 0, storageError("list sample orders", err)
	}
	return orders, total, nil
}

func (s *SampleOrderService) UpdateStatus(ctx context.Context, id string, req *UpdateSampleOrderStatusRequest) (*models.SampleOrder, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	order, err := s.GetSampleOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == models.SampleOrderStatusCancelled && req.Status != models.SampleOrderStatusCancelled {
		return nil, fmt.Errorf("order %s is cancelled: %w", order.OrderNumber, apperror.ErrConflict)
	}

	order.Status = req.Status
	if err := s.store.UpdateSampleOrder(ctx, order); err != nil {
		return nil, storageError("update sample order", err)
	}
	return order, nil
}
