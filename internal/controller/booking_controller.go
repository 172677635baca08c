package controller

import (
	"errors"

	"wisely_backend/internal/service"
	"wisely_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	BookingService *service.BookingService
}

func NewBookingController(bookingService *service.BookingService) *BookingController {
	return &BookingController{BookingService: bookingService}
}

// Create godoc
// @Summary Book a session with a teacher
// @Description Records the booking with status pending; availability is not checked
// @Tags bookings
// @Accept json
// @Produce json
// @Param body body service.BookingRequest true "Booking details"
// @Success 201 {object} util.Response{data=model.Booking}
// @Failure 400 {object} util.Response "Invalid booking"
// @Failure 404 {object} util.Response "Teacher not found"
// @Router /api/bookings [post]
func (c *BookingController) Create(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	var req service.BookingRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	booking, err := c.BookingService.Create(userID, req)
	if err != nil {
		if errors.Is(err, util.ErrTeacherNotFound) {
			util.NotFound(ctx, "Teacher not found")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, booking)
}

// List godoc
// @Summary List the caller's bookings
// @Tags bookings
// @Produce json
// @Success 200 {object} util.Response{data=[]model.Booking}
// @Failure 401 {object} util.Response "Unauthorized"
// @Router /api/bookings [get]
func (c *BookingController) List(ctx *gin.Context) {
	userID := util.CurrentUserID(ctx)
	if userID == "" {
		util.Unauthorized(ctx)
		return
	}

	bookings, err := c.BookingService.ListForUser(userID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, bookings)
}
