package payment

// Order is a gateway order as returned by the payment provider.
// It is never persisted locally; the client keeps the id to reference
// the payment later.
type Order struct {
	ID        string `json:"id"`
	Entity    string `json:"entity"`
	Amount    int64  `json:"amount"`
	AmountDue int64  `json:"amount_due"`
	Currency  string `json:"currency"`
	Receipt   string `json:"receipt"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

// Payment is a gateway payment referenced by the caller-supplied id.
type Payment struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   Status `json:"status"`
}

type Status string

const (
	StatusCreated    Status = "created"
	StatusAuthorized Status = "authorized"
	StatusCaptured   Status = "captured"
	StatusRefunded   Status = "refunded"
	StatusFailed     Status = "failed"
)

// Image is a persisted record of one uploaded image.
type Image struct {
	ID  string `json:"id,omitempty"`
	URL string `json:"url"`
}

// Upload is the media host's response to an image upload.
type Upload struct {
	SecureURL string `json:"secure_url"`
}

// CreateOrderRequest carries the gateway order parameters. Amount is in
// the minor currency unit (paise for INR).
type CreateOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
}

// CaptureRequest carries the capture handler's body. Amount is in whole
// currency units; Image is raw base64 or a data URL.
type CaptureRequest struct {
	Amount float64
	Image  string
}

// CaptureResult is the success payload of the capture flow.
type CaptureResult struct {
	Message  string `json:"message"`
	ImageURL string `json:"imageUrl"`
}
