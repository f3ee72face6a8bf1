package dto

import (
	"parkease/internal/domains/booking/model"
	"parkease/shared/constant"
	gModel "parkease/shared/model"
	"parkease/shared/timezone"
	"time"
)

type CreateBookingRequest struct {
	UserID       string  `json:"userId"       validate:"required"`
	LocationName string  `json:"locationName" validate:"required,max=255"`
	StartTime    string  `json:"startTime"    validate:"required"`
	Duration     int     `json:"duration"     validate:"required,min=1"`
	Price        float64 `json:"price"        validate:"omitempty,min=0"`
}

// ParseStartTime accepts the zone-less ISO-8601 layout the frontend sends,
// with full RFC3339 as a fallback.
func (c *CreateBookingRequest) ParseStartTime() (time.Time, error) {
	startTime, err := timezone.Parse(constant.TimeFormatLocalDateTime, c.StartTime)
	if err == nil {
		return startTime, nil
	}

	return time.Parse(constant.DateFormat, c.StartTime)
}

func (c *CreateBookingRequest) ToModel(userID int64, startTime time.Time, username string) model.Booking {
	return model.Booking{
		UserID:          userID,
		LocationName:    c.LocationName,
		StartTime:       startTime,
		DurationInHours: c.Duration,
		TotalPrice:      c.Price,
		Status:          constant.BookingStatusActive,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateBookingStatusRequest struct {
	Status string `db:"status" json:"status" validate:"required,oneof=Active Completed Cancelled"`
}

// CreateBookingResponse is the envelope for a confirmed booking.
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID int64  `json:"bookingId"`
}

type BookingResponse struct {
	ID              int64   `json:"id"`
	UserID          string  `json:"userId"`
	LocationName    string  `json:"locationName"`
	StartTime       string  `json:"startTime"`
	DurationInHours int     `json:"durationInHours"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
}

func (r *BookingResponse) FromModel(booking model.Booking) {
	r.ID = booking.ID

	if booking.UserCustomID != nil {
		r.UserID = *booking.UserCustomID
	}

	r.LocationName = booking.LocationName
	r.StartTime = timezone.Format(booking.StartTime, constant.TimeFormatLocalDateTime)
	r.DurationInHours = booking.DurationInHours
	r.TotalPrice = booking.TotalPrice
	r.Status = booking.Status
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)

// BookingEvent is the payload published to the booking events topic.
type BookingEvent struct {
	Event           string  `json:"event"`
	BookingID       int64   `json:"bookingId"`
	UserID          string  `json:"userId"`
	LocationName    string  `json:"locationName"`
	StartTime       string  `json:"startTime"`
	DurationInHours int     `json:"durationInHours"`
	TotalPrice      float64 `json:"totalPrice"`
	Status          string  `json:"status"`
	OccurredAt      string  `json:"occurredAt"`
}

func NewBookingEvent(event string, booking model.Booking) BookingEvent {
	userID := constant.Empty
	if booking.UserCustomID != nil {
		userID = *booking.UserCustomID
	}

	return BookingEvent{
		Event:           event,
		BookingID:       booking.ID,
		UserID:          userID,
		LocationName:    booking.LocationName,
		StartTime:       timezone.Format(booking.StartTime, constant.TimeFormatLocalDateTime),
		DurationInHours: booking.DurationInHours,
		TotalPrice:      booking.TotalPrice,
		Status:          booking.Status,
		OccurredAt:      timezone.Format(timezone.Now(), constant.DateFormat),
	}
}
