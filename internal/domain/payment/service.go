package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"
)

const (
	currencyINR    = "INR"
	uploadFolder   = "custom_shirts"
	successMessage = "Payment successful and image uploaded"
	receiptPrefix  = "receipt_order_"
)

// Service orchestrates order creation and the capture flow against the
// payment gateway, the media host and the image record store.
type Service struct {
	gateway  Gateway
	uploader Uploader
	images   ImageRepo
	log      *slog.Logger

	now func() time.Time
}

func NewService(gateway Gateway, uploader Uploader, images ImageRepo, log *slog.Logger) *Service {
	return &Service{
		gateway:  gateway,
		uploader: uploader,
		images:   images,
		log:      log,
		now:      time.Now,
	}
}

// CreateOrder creates a gateway order for the given amount in whole
// currency units. The gateway receives the amount in paise, a fixed INR
// currency and a timestamped receipt id.
func (s *Service) CreateOrder(ctx context.Context, amount float64) (Order, error) {
	req := CreateOrderRequest{
		Amount:   toMinorUnits(amount),
		Currency: currencyINR,
		Receipt:  s.newReceiptID(),
	}

	order, err := s.gateway.CreateOrder(ctx, req)
	if err != nil {
		s.log.ErrorContext(ctx, "Error creating order", "error", err, "receipt", req.Receipt)
		return Order{}, fmt.Errorf("create order: %w", err)
	}

	s.log.InfoContext(ctx, "order created", "order_id", order.ID, "amount", order.Amount)
	return order, nil
}

// Capture finalizes the payment and, on success, uploads the supplied
// image and persists its hosted URL.
//
// The flow is strictly sequential: capture (recovering from an earlier
// capture by fetching the payment), status gate, image gate, upload,
// persist. The image gate runs only after the payment is captured; a
// captured payment with no image is not refunded.
func (s *Service) Capture(ctx context.Context, paymentID string, req CaptureRequest) (CaptureResult, error) {
	pay, err := s.gateway.CapturePayment(ctx, paymentID, toMinorUnits(req.Amount), currencyINR)
	if err != nil {
		if !errors.Is(err, ErrAlreadyCaptured) {
			s.log.ErrorContext(ctx, "Error in payment capture process", "payment_id", paymentID, "error", err)
			return CaptureResult{}, fmt.Errorf("%w: %s", ErrCaptureFailed, err)
		}

		pay, err = s.gateway.FetchPayment(ctx, paymentID)
		if err != nil {
			s.log.ErrorContext(ctx, "Error fetching captured payment", "payment_id", paymentID, "error", err)
			return CaptureResult{}, fmt.Errorf("%w: %s", ErrCaptureFailed, err)
		}
	}

	if pay.Status != StatusCaptured {
		s.log.ErrorContext(ctx, "payment not captured", "payment_id", paymentID, "status", pay.Status)
		return CaptureResult{}, ErrNotCaptured
	}

	if req.Image == "" {
		// The payment is already captured at this point and stays captured.
		s.log.WarnContext(ctx, "No image data received for captured payment", "payment_id", paymentID)
		return CaptureResult{}, ErrMissingImage
	}

	upload, err := s.uploader.Upload(ctx, NormalizeDataURL(req.Image), uploadFolder)
	if err != nil {
		s.log.ErrorContext(ctx, "Error uploading image", "payment_id", paymentID, "error", err)
		return CaptureResult{}, fmt.Errorf("%w: %s", ErrUploadFailed, err)
	}

	if _, err := s.images.Create(ctx, upload.SecureURL); err != nil {
		s.log.ErrorContext(ctx, "Error saving image record", "payment_id", paymentID, "error", err)
		return CaptureResult{}, fmt.Errorf("%w: %s", ErrPersistenceFailed, err)
	}

	s.log.InfoContext(ctx, "payment captured and image uploaded",
		"payment_id", paymentID, "image_url", upload.SecureURL)

	return CaptureResult{Message: successMessage, ImageURL: upload.SecureURL}, nil
}

func (s *Service) newReceiptID() string {
	return fmt.Sprintf("%s%d", receiptPrefix, s.now().UnixMilli())
}

func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
