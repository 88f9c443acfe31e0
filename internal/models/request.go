package models

// Batch cooking request lifecycle. Requests are never deleted; the admin
// moves them through these states.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is a known request status.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusCompleted
}

// CartSnapshotItem is one cart line as captured at submission time.
// The adjusted figures are the values frozen when the line was added to
// the cart, not recomputed server-side.
type CartSnapshotItem struct {
	DishID        string  `json:"dishId"`
	DishName      string  `json:"dishName"`
	Quantity      int     `json:"quantity" validate:"gte=1"`
	Servings      int     `json:"servings" validate:"gte=1"`
	AdjustedTime  int     `json:"adjustedTime"`
	AdjustedPrice float64 `json:"adjustedPrice"`
}

// CartSnapshot is the cart state attached to a batch cooking request.
type CartSnapshot struct {
	Items      []CartSnapshotItem `json:"items" validate:"required,min=1,dive"`
	TotalPrice float64            `json:"totalPrice"`
	TotalItems int                `json:"totalItems"`
	GrandTotal float64            `json:"grandTotal,omitempty"`
}

// BatchCookingRequestInput is the submission payload.
type BatchCookingRequestInput struct {
	User    string       `json:"user" validate:"required"`
	Email   string       `json:"email" validate:"required,email"`
	Phone   string       `json:"phone,omitempty"`
	Date    string       `json:"date,omitempty"`
	Message string       `json:"message,omitempty"`
	Cart    CartSnapshot `json:"cart" validate:"required"`
}

// BatchCookingRequest is a persisted triage record.
type BatchCookingRequest struct {
	ID        string       `json:"id"`
	UserID    string       `json:"userId,omitempty"`
	User      string       `json:"user"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone,omitempty"`
	Date      string       `json:"date"`
	Message   string       `json:"message,omitempty"`
	Cart      CartSnapshot `json:"cart"`
	Status    string       `json:"status"`
	Notes     string       `json:"notes,omitempty"`
	CreatedAt string       `json:"createdAt"`
	UpdatedAt string       `json:"updatedAt,omitempty"`
}

// RequestStats are the aggregate counts shown on the admin dashboard.
type RequestStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Completed int `json:"completed"`
}
