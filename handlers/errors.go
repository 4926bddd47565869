package handlers

import (
	"errors"
	"net/http"

	"weddinghub/models"
	bookingSvc "weddinghub/services/booking"
	chatSvc "weddinghub/services/chat"
	eventSvc "weddinghub/services/event"
	guestSvc "weddinghub/services/guest"
	paymentSvc "weddinghub/services/payment"
	reviewSvc "weddinghub/services/review"
	userSvc "weddinghub/services/user"
	"weddinghub/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service error into the right HTTP status
// and the standard error envelope. Unknown errors become 500s without leaking
// internals.
func respondServiceError(c *gin.Context, err error) {
	var (
		invalidVendor bookingSvc.InvalidVendorError
		pastDate      bookingSvc.PastDateError
		emptySlots    bookingSvc.EmptySlotSetError
		slotTaken     bookingSvc.SlotTakenError
		capacity      bookingSvc.CapacityError
		finalized     models.FinalizedError
		bForbidden    bookingSvc.ForbiddenError
		bNotFound     bookingSvc.NotFoundError

		duplicate   userSvc.DuplicateAccountError
		authErr     userSvc.AuthError
		uNotFound   userSvc.NotFoundError
		uValidation userSvc.ValidationError
		roleErr     userSvc.RoleError

		cForbidden  chatSvc.ForbiddenError
		cValidation chatSvc.ValidationError

		rForbidden  reviewSvc.ForbiddenError
		rNotFound   reviewSvc.NotFoundError
		rValidation reviewSvc.ValidationError

		gForbidden  guestSvc.ForbiddenError
		gNotFound   guestSvc.NotFoundError
		gValidation guestSvc.ValidationError

		eForbidden eventSvc.ForbiddenError
		eNotFound  eventSvc.NotFoundError

		pForbidden paymentSvc.ForbiddenError
	)

	switch {
	case errors.As(err, &invalidVendor),
		errors.As(err, &pastDate),
		errors.As(err, &emptySlots),
		errors.As(err, &slotTaken),
		errors.As(err, &capacity),
		errors.As(err, &finalized),
		errors.As(err, &duplicate),
		errors.As(err, &uValidation),
		errors.As(err, &cValidation),
		errors.As(err, &rValidation),
		errors.As(err, &gValidation):
		utils.JSONError(c, http.StatusBadRequest, err.Error(), "")

	case errors.As(err, &authErr):
		utils.JSONError(c, http.StatusUnauthorized, err.Error(), "")

	case errors.As(err, &bForbidden),
		errors.As(err, &roleErr),
		errors.As(err, &cForbidden),
		errors.As(err, &rForbidden),
		errors.As(err, &gForbidden),
		errors.As(err, &eForbidden),
		errors.As(err, &pForbidden):
		utils.JSONError(c, http.StatusForbidden, err.Error(), "")

	case errors.As(err, &bNotFound),
		errors.As(err, &uNotFound),
		errors.As(err, &rNotFound),
		errors.As(err, &gNotFound),
		errors.As(err, &eNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")

	default:
		utils.JSONError(c, http.StatusInternalServerError, "Server error", "")
	}
}

// respondBindError reports a failed request binding.
func respondBindError(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
}
