package http

import (
	"time"

	"brickmarket/internal/core/application/usecases/commands"
	"brickmarket/internal/core/application/usecases/queries"
	"brickmarket/internal/core/domain/model/kernel"
	"brickmarket/internal/core/domain/model/order"
	"brickmarket/internal/core/domain/services"
)

// Error is the uniform error payload of the API.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Address carries a delivery address over the wire, in requests and responses
// alike.
type Address struct {
	FullName   string `json:"fullName"`
	Phone      string `json:"phone"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}

// CheckoutItem is one cart position in a checkout request. Price is the
// decimal string snapshot of the catalog price, for example "100.00".
type CheckoutItem struct {
	SellerID  string `json:"sellerId"`
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Unit      string `json:"unit"`
}

// CheckoutRequest is the body of POST /api/v1/checkout.
type CheckoutRequest struct {
	Items           []CheckoutItem `json:"items"`
	DeliveryAddress Address        `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod"`
}

// CheckoutOrderResult reports the outcome of one seller group. A created
// group carries orderId, a failed one carries error.
type CheckoutOrderResult struct {
	SellerID string `json:"sellerId"`
	OrderID  string `json:"orderId,omitempty"`
	Error    string `json:"error,omitempty"`
}

// CheckoutResponse is the per-seller-group report of a checkout.
type CheckoutResponse struct {
	Orders []CheckoutOrderResult `json:"orders"`
}

// OrderSummary is one row of the role-scoped order listing.
type OrderSummary struct {
	ID              string    `json:"id"`
	CustomerID      string    `json:"customerId"`
	SellerID        string    `json:"sellerId"`
	Status          string    `json:"status"`
	PaymentMethod   string    `json:"paymentMethod"`
	PaymentStatus   string    `json:"paymentStatus"`
	Total           string    `json:"total"`
	ContactAttempts int       `json:"contactAttempts"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// OrderItem is one snapshotted line of an order detail.
type OrderItem struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
	Unit      string `json:"unit"`
}

// HistoryEntry is one transition record of an order detail.
type HistoryEntry struct {
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	ActorRole  string    `json:"actorRole"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// OrderDetails is the full view of one order including its transition trail.
type OrderDetails struct {
	ID               string         `json:"id"`
	CustomerID       string         `json:"customerId"`
	SellerID         string         `json:"sellerId"`
	Items            []OrderItem    `json:"items"`
	DeliveryAddress  Address        `json:"deliveryAddress"`
	Subtotal         string         `json:"subtotal"`
	DeliveryCharges  string         `json:"deliveryCharges"`
	Total            string         `json:"total"`
	PaymentMethod    string         `json:"paymentMethod"`
	PaymentStatus    string         `json:"paymentStatus"`
	PrepaymentAmount string         `json:"prepaymentAmount,omitempty"`
	Status           string         `json:"status"`
	ContactAttempts  int            `json:"contactAttempts"`
	SellerResponse   string         `json:"sellerResponse,omitempty"`
	BuyerResponse    string         `json:"buyerResponse,omitempty"`
	RejectReason     string         `json:"rejectReason,omitempty"`
	Note             string         `json:"note,omitempty"`
	History          []HistoryEntry `json:"history"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
}

// ChangeStatusRequest is the body of PATCH /api/v1/orders/{orderId}/status.
type ChangeStatusRequest struct {
	Status         string `json:"status"`
	SellerResponse string `json:"sellerResponse,omitempty"`
	BuyerResponse  string `json:"buyerResponse,omitempty"`
	RejectReason   string `json:"rejectReason,omitempty"`
	Note           string `json:"note,omitempty"`
}

// ChangePaymentStatusRequest is the body of PATCH /api/v1/orders/{orderId}/payment.
type ChangePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// toCheckoutResponse maps per-group checkout results to the wire report.
func toCheckoutResponse(results []commands.CheckoutResult) CheckoutResponse {
	orders := make([]CheckoutOrderResult, len(results))
	for i, result := range results {
		orders[i] = CheckoutOrderResult{SellerID: result.SellerID.String()}
		if result.Err != nil {
			orders[i].Error = result.Err.Error()
			continue
		}
		orders[i].OrderID = result.OrderID.String()
	}
	return CheckoutResponse{Orders: orders}
}

// toOrderSummary maps one listing row to the wire shape.
func toOrderSummary(row queries.GetOrdersQueryResponse) OrderSummary {
	return OrderSummary{
		ID:              row.ID.String(),
		CustomerID:      row.CustomerID.String(),
		SellerID:        row.SellerID.String(),
		Status:          row.Status.String(),
		PaymentMethod:   row.PaymentMethod.String(),
		PaymentStatus:   row.PaymentStatus.String(),
		Total:           row.Total.String(),
		ContactAttempts: row.ContactAttempts,
		CreatedAt:       row.CreatedAt,
		UpdatedAt:       row.UpdatedAt,
	}
}

// toOrderDetails maps one order detail to the wire shape.
func toOrderDetails(detail queries.GetOrderDetailsQueryResponse) OrderDetails {
	items := make([]OrderItem, len(detail.Items))
	for i, item := range detail.Items {
		items[i] = OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     item.Price.String(),
			Unit:      item.Unit,
		}
	}

	history := make([]HistoryEntry, len(detail.History))
	for i, entry := range detail.History {
		history[i] = HistoryEntry{
			FromStatus: entry.FromStatus.String(),
			ToStatus:   entry.ToStatus.String(),
			ActorRole:  entry.ActorRole.String(),
			Note:       entry.Note,
			OccurredAt: entry.OccurredAt,
		}
	}

	details := OrderDetails{
		ID:         detail.ID.String(),
		CustomerID: detail.CustomerID.String(),
		SellerID:   detail.SellerID.String(),
		Items:      items,
		DeliveryAddress: Address{
			FullName:   detail.DeliveryAddress.FullName(),
			Phone:      detail.DeliveryAddress.Phone(),
			Line1:      detail.DeliveryAddress.Line1(),
			Line2:      detail.DeliveryAddress.Line2(),
			City:       detail.DeliveryAddress.City(),
			PostalCode: detail.DeliveryAddress.PostalCode(),
		},
		Subtotal:        detail.Subtotal.String(),
		DeliveryCharges: detail.DeliveryCharges.String(),
		Total:           detail.Total.String(),
		PaymentMethod:   detail.PaymentMethod.String(),
		PaymentStatus:   detail.PaymentStatus.String(),
		Status:          detail.Status.String(),
		ContactAttempts: detail.ContactAttempts,
		SellerResponse:  detail.SellerResponse,
		BuyerResponse:   detail.BuyerResponse,
		RejectReason:    detail.RejectReason,
		Note:            detail.Note,
		History:         history,
		CreatedAt:       detail.CreatedAt,
		UpdatedAt:       detail.UpdatedAt,
	}
	if detail.PrepaymentAmount != nil {
		details.PrepaymentAmount = detail.PrepaymentAmount.String()
	}

	return details
}

// toCartItems parses checkout positions into domain cart items. Identifier
// and price parsing fails fast; the rest is validated by the domain when the
// cart is split.
func toCartItems(items []CheckoutItem) ([]services.CartItem, error) {
	cartItems := make([]services.CartItem, len(items))
	for i, item := range items {
		sellerID, err := kernel.UUIDFromString(item.SellerID)
		if err != nil {
			return nil, err
		}

		price, err := kernel.MoneyFromString(item.Price)
		if err != nil {
			return nil, err
		}

		cartItems[i] = services.CartItem{
			SellerID:  sellerID,
			ProductID: item.ProductID,
			Title:     item.Title,
			Quantity:  item.Quantity,
			Price:     price,
			Unit:      item.Unit,
		}
	}

	return cartItems, nil
}

// toDeliveryAddress parses the wire address into the domain value object.
func toDeliveryAddress(address Address) (order.Address, error) {
	return order.NewAddress(
		address.FullName,
		address.Phone,
		address.Line1,
		address.Line2,
		address.City,
		address.PostalCode,
	)
}
