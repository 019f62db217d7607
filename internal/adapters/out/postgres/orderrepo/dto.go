// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables with indexes on the
// columns the read side filters by: customer, seller and status.
//
// Timestamps are owned by the domain, so GORM's automatic time tracking is
// switched off for them.
type OrderDTO struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	CustomerID       uuid.UUID        `gorm:"type:uuid;not null;index"`
	SellerID         uuid.UUID        `gorm:"type:uuid;not null;index"`
	Items            []OrderItemDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Address          AddressDTO       `gorm:"embedded;embeddedPrefix:address_"`
	Subtotal         decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	DeliveryCharges  decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	Total            decimal.Decimal  `gorm:"type:decimal(12,2);not null"`
	PaymentMethod    int              `gorm:"type:int;not null"`
	PaymentStatus    int              `gorm:"type:int;not null"`
	PrepaymentAmount *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status           int              `gorm:"type:int;not null;index"`
	ContactAttempts  int              `gorm:"type:int;not null"`
	SellerResponse   string           `gorm:"type:text"`
	BuyerResponse    string           `gorm:"type:text"`
	RejectReason     string           `gorm:"type:text"`
	Note             string           `gorm:"type:text"`
	CreatedAt        time.Time        `gorm:"not null;autoCreateTime:false"`
	UpdatedAt        time.Time        `gorm:"not null;autoUpdateTime:false"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	FullName   string `gorm:"type:varchar(255);not null"`
	Phone      string `gorm:"type:varchar(64);not null"`
	Line1      string `gorm:"type:varchar(255);not null"`
	Line2      string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(255);not null"`
	PostalCode string `gorm:"type:varchar(32);not null"`
}

// OrderItemDTO represents the database structure for persisting order line items.
// Line items are value objects without identity, so rows carry a surrogate key
// and are written once at order creation.
type OrderItemDTO struct {
	ID        uint            `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID string          `gorm:"type:varchar(255);not null"`
	Title     string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"type:int;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Unit      string          `gorm:"type:varchar(64);not null"`
}

// TableName specifies the database table name for order line items.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including the optional cash on delivery prepayment.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:   orderID,
			ProductID: item.ProductID(),
			Title:     item.Title(),
			Quantity:  item.Quantity(),
			Price:     item.Price().Amount(),
			Unit:      item.Unit(),
		})
	}

	var prepayment *decimal.Decimal
	if p := aggregate.PrepaymentAmount(); p != nil {
		raw := p.Amount()
		prepayment = &raw
	}

	address := aggregate.DeliveryAddress()

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		SellerID:   aggregate.SellerID().Bytes(),
		Items:      items,
		Address: AddressDTO{
			FullName:   address.FullName(),
			Phone:      address.Phone(),
			Line1:      address.Line1(),
			Line2:      address.Line2(),
			City:       address.City(),
			PostalCode: address.PostalCode(),
		},
		Subtotal:         aggregate.Subtotal().Amount(),
		DeliveryCharges:  aggregate.DeliveryCharges().Amount(),
		Total:            aggregate.Total().Amount(),
		PaymentMethod:    int(aggregate.PaymentMethod()),
		PaymentStatus:    int(aggregate.PaymentStatus()),
		PrepaymentAmount: prepayment,
		Status:           int(aggregate.Status()),
		ContactAttempts:  aggregate.ContactAttempts(),
		SellerResponse:   aggregate.SellerResponse(),
		BuyerResponse:    aggregate.BuyerResponse(),
		RejectReason:     aggregate.RejectReason(),
		Note:             aggregate.Note(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including items and monetary values
// using RestoreOrder, which also resets the optimistic concurrency snapshot
// to the loaded status and contact attempt counter.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	sellerID, err := kernel.UUIDFromBytes(dto.SellerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		dto.Address.FullName,
		dto.Address.Phone,
		dto.Address.Line1,
		dto.Address.Line2,
		dto.Address.City,
		dto.Address.PostalCode,
	)
	if err != nil {
		return nil, err
	}

	subtotal, err := kernel.NewMoney(dto.Subtotal)
	if err != nil {
		return nil, err
	}

	deliveryCharges, err := kernel.NewMoney(dto.DeliveryCharges)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	var prepayment *kernel.Money
	if dto.PrepaymentAmount != nil {
		p, prepErr := kernel.NewMoney(*dto.PrepaymentAmount)
		if prepErr != nil {
			return nil, prepErr
		}
		prepayment = &p
	}

	return order.RestoreOrder(order.RestoreOrderParams{
		ID:               id,
		CustomerID:       customerID,
		SellerID:         sellerID,
		Items:            items,
		DeliveryAddress:  address,
		Subtotal:         subtotal,
		DeliveryCharges:  deliveryCharges,
		Total:            total,
		PaymentMethod:    order.PaymentMethod(dto.PaymentMethod),
		PaymentStatus:    order.PaymentStatus(dto.PaymentStatus),
		PrepaymentAmount: prepayment,
		Status:           order.Status(dto.Status),
		ContactAttempts:  dto.ContactAttempts,
		SellerResponse:   dto.SellerResponse,
		BuyerResponse:    dto.BuyerResponse,
		RejectReason:     dto.RejectReason,
		Note:             dto.Note,
		CreatedAt:        dto.CreatedAt,
		UpdatedAt:        dto.UpdatedAt,
	})
}

// itemToDomain converts a line item DTO back to its domain value object.
func itemToDomain(dto OrderItemDTO) (order.LineItem, error) {
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return order.LineItem{}, err
	}

	return order.NewLineItem(dto.ProductID, dto.Title, dto.Quantity, price, dto.Unit)
}
