package catalog

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// EventPublisher publishes catalog events. Implementations must tolerate
// concurrent calls; a nil publisher disables publication.
type EventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Service owns catalog writes and reads. Creation runs the sequencer before
// persisting, so ids follow the configured sequencing policy.
type Service struct {
	store     Store
	sequencer *Sequencer
	publisher EventPublisher
}

func NewService(store Store, mode SequencerMode, publisher EventPublisher) *Service {
	return &Service{
		store:     store,
		sequencer: NewSequencer(store, mode),
		publisher: publisher,
	}
}

// NewProduct carries the caller-supplied fields of a product to create
type NewProduct struct {
	Name     string  `json:"name"`
	Image    string  `json:"image"`
	Category string  `json:"category"`
	NewPrice float64 `json:"new_price"`
	OldPrice float64 `json:"old_price"`
}

// Create assigns the next id and persists the product
func (s *Service) Create(ctx context.Context, np NewProduct) (*Product, error) {
	id, err := s.sequencer.NextID(ctx)
	if err != nil {
		return nil, err
	}

	product := &Product{
		ID:        id,
		Name:      np.Name,
		Image:     np.Image,
		Category:  np.Category,
		NewPrice:  np.NewPrice,
		OldPrice:  np.OldPrice,
		Available: true,
		CreatedAt: time.Now(),
	}

	if err := s.store.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to insert product: %w", err)
	}

	s.publish(ctx, product.ID, EventProductCreated, ProductCreated{
		EventID:   uuid.New().String(),
		ProductID: product.ID,
		Name:      product.Name,
		Category:  product.Category,
		CreatedAt: product.CreatedAt,
	})

	return product, nil
}

// Delete removes a product by id; ErrNotFound when absent
func (s *Service) Delete(ctx context.Context, id int64) (*Product, error) {
	product, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, id, EventProductDeleted, ProductDeleted{
		EventID:   uuid.New().String(),
		ProductID: id,
		Name:      product.Name,
		DeletedAt: time.Now(),
	})

	return product, nil
}

// List returns every product in insertion order
func (s *Service) List(ctx context.Context) ([]Product, error) {
	return s.store.All(ctx)
}

// publish sends an event best-effort; failures are logged, never surfaced
func (s *Service) publish(ctx context.Context, productID int64, eventType string, event any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, strconv.FormatInt(productID, 10), event); err != nil {
		log.Printf("[Catalog] Failed to publish %s for product %d: %v", eventType, productID, err)
	}
}
