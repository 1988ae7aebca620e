package postgres

import (
	"context"

	"venturesroom/internal/domain/entity"
	domainerrors "venturesroom/internal/domain/errors"
	"venturesroom/internal/domain/repository"
	"venturesroom/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderProductRow mirrors one row of the 'order_products' join table.
// Join rows are written directly so product rows are never upserted through
// the association.
type orderProductRow struct {
	OrderModelID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductModelID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName explicitly sets the table name for GORM.
func (orderProductRow) TableName() string {
	return "order_products"
}

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// Create persists the order header and its product links. Callers are
// expected to run it inside TransactionManager.Execute.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order, productIDs []uuid.UUID) error {
	orderM := &model.OrderModel{
		ID:         order.ID,
		CustomerID: order.CustomerID,
		Status:     order.Status.String(),
		Total:      order.Total,
	}

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	rows := make([]orderProductRow, 0, len(productIDs))
	for _, productID := range productIDs {
		rows = append(rows, orderProductRow{
			OrderModelID:   orderM.ID,
			ProductModelID: productID,
		})
	}

	if err := repo.db.WithContext(ctx).Create(&rows).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to link order products")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

// FindByCustomer retrieves a client's orders with products, newest first.
func (repo *orderRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Products").
		Preload("Products.Category").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by customer")
	}

	return toOrderDomainList(orderModels), nil
}

// FindByStartup retrieves all orders containing at least one product of the
// startup. Product lists are filtered down to that startup's products and the
// purchaser is preloaded.
func (repo *orderRepository) FindByStartup(ctx context.Context, startupID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Customer").
		Preload("Products", "startup_id = ?", startupID).
		Joins("JOIN order_products op ON op.order_model_id = orders.id").
		Joins("JOIN products p ON p.id = op.product_model_id").
		Where("p.startup_id = ?", startupID).
		Distinct("orders.*").
		Order("orders.created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by startup")
	}

	return toOrderDomainList(orderModels), nil
}

// --- Mapper Functions ---

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:         data.ID,
		CustomerID: data.CustomerID,
		Status:     entity.OrderStatus(data.Status),
		Total:      data.Total,
		CreatedAt:  data.CreatedAt,
	}

	if len(data.Products) > 0 {
		order.Products = make([]*entity.Product, 0, len(data.Products))
		for i := range data.Products {
			order.Products = append(order.Products, toProductDomain(&data.Products[i]))
		}
	}
	if data.Customer != nil {
		order.Customer = toUserDomain(data.Customer)
	}

	return order
}

func toOrderDomainList(models []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(models))
	for _, orderM := range models {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}
