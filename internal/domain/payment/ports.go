package payment

import "context"

//go:generate mockgen -source ports.go -destination mock_ports.go -package payment

// Gateway is the payment provider port.
// CapturePayment returns ErrAlreadyCaptured when the payment was captured
// by an earlier request.
type Gateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (Order, error)
	CapturePayment(ctx context.Context, paymentID string, amount int64, currency string) (Payment, error)
	FetchPayment(ctx context.Context, paymentID string) (Payment, error)
}

// Uploader is the media host port. Upload stores a data URL under the
// given logical folder and returns the hosted secure URL.
type Uploader interface {
	Upload(ctx context.Context, dataURL, folder string) (Upload, error)
}

// ImageRepo persists image records. Create assigns an id and stores the URL.
type ImageRepo interface {
	Create(ctx context.Context, url string) (Image, error)
}
