package payment

import (
	"fmt"

	bookingRepo "weddinghub/database/repository/booking"
	"weddinghub/models"
	bookingSvc "weddinghub/services/booking"
	"weddinghub/utils"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// ForbiddenError signals a payment attempt on someone else's booking.
type ForbiddenError struct {
	Reason string
}

func (e ForbiddenError) Error() string {
	return e.Reason
}

// IntentResponse carries the client secret the frontend needs to complete a
// card payment.
type IntentResponse struct {
	BookingID    string `json:"bookingId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
}

// PaymentService creates card payment intents for bookings and records
// completion.
type PaymentService interface {
	// CreateIntent opens a Stripe PaymentIntent for the booking amount. The
	// amount is in the smallest currency unit.
	CreateIntent(actor *models.User, bookingID string, amount int64, currency string) (*IntentResponse, error)
	// CompletePayment marks a booking's payment as completed after the
	// frontend reports a successful charge.
	CompletePayment(actor *models.User, bookingID string) (*models.Booking, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Bookings bookingRepo.BookingRepository
	Svc      bookingSvc.BookingService
}

// NewPaymentService creates a PaymentService.
func NewPaymentService(bookings bookingRepo.BookingRepository, svc bookingSvc.BookingService) *DefaultPaymentService {
	return &DefaultPaymentService{Bookings: bookings, Svc: svc}
}

// loadOwned fetches a booking and checks the actor is its customer.
func (s *DefaultPaymentService) loadOwned(actor *models.User, bookingID string) (*models.Booking, error) {
	b, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, bookingSvc.NotFoundError{ID: bookingID}
	}
	if b.CustomerID != actor.ID {
		return nil, ForbiddenError{Reason: "not authorized to pay for this booking"}
	}
	return b, nil
}

// CreateIntent opens a PaymentIntent tagged with the booking ID.
func (s *DefaultPaymentService) CreateIntent(actor *models.User, bookingID string, amount int64, currency string) (*IntentResponse, error) {
	b, err := s.loadOwned(actor, bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus == models.PaymentCompleted {
		return nil, fmt.Errorf("booking %s is already paid", bookingID)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive")
	}
	if currency == "" {
		currency = string(stripe.CurrencyUSD)
	}

	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.AddMetadata("bookingId", b.ID)
	params.AddMetadata("customerId", b.CustomerID)

	pi, err := paymentintent.New(params)
	if err != nil {
		utils.GetLogger().Error("failed to create payment intent",
			zap.String("bookingId", bookingID),
			zap.Error(err),
		)
		return nil, fmt.Errorf("payment intent creation failed: %w", err)
	}

	return &IntentResponse{
		BookingID:    b.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       amount,
		Currency:     currency,
	}, nil
}

// CompletePayment flips the booking's payment status to completed.
func (s *DefaultPaymentService) CompletePayment(actor *models.User, bookingID string) (*models.Booking, error) {
	if _, err := s.loadOwned(actor, bookingID); err != nil {
		return nil, err
	}
	return s.Svc.UpdatePaymentStatus(bookingID, models.PaymentCompleted)
}
