package payment

import "errors"

var (
	// ErrAlreadyCaptured is returned by the gateway when capturing a payment
	// that has already been captured. The capture flow recovers from it by
	// fetching the existing payment instead of failing.
	ErrAlreadyCaptured = errors.New("payment has already been captured")

	// ErrCaptureFailed is returned when the gateway rejects the capture for
	// any reason other than an earlier capture.
	ErrCaptureFailed = errors.New("capture failed")

	// ErrNotCaptured is returned when the payment status is anything other
	// than "captured" after the capture step.
	ErrNotCaptured = errors.New("Payment not captured")

	// ErrMissingImage is returned when no image payload was supplied.
	ErrMissingImage = errors.New("No image data received")

	// ErrUploadFailed is returned when the media host rejects the upload.
	ErrUploadFailed = errors.New("image upload failed")

	// ErrPersistenceFailed is returned when the image record cannot be stored.
	ErrPersistenceFailed = errors.New("image record persistence failed")
)
