package handlers

import (
	userRepo "weddinghub/database/repository/user"
)

// HandlerBundle carries every handler plus the repositories the middleware
// needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Booking      *BookingHandler
	User         *UserHandler
	Planning     *PlanningHandler
	Chat         *ChatHandler
	Review       *ReviewHandler
	Notification *NotificationHandler
	Guest        *GuestHandler
	Event        *EventHandler
	Payment      *PaymentHandler
	Storage      *StorageHandler
}
