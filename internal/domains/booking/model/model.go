package model

import (
	"parkease/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID              = "id"
	FieldUserID          = "user_id"
	FieldLocationName    = "location_name"
	FieldStartTime       = "start_time"
	FieldDurationInHours = "duration_in_hours"
	FieldTotalPrice      = "total_price"
	FieldStatus          = "status"
)

type Booking struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	LocationName    string    `db:"location_name"`
	StartTime       time.Time `db:"start_time"`
	DurationInHours int       `db:"duration_in_hours"`
	TotalPrice      float64   `db:"total_price"`
	Status          string    `db:"status"`
	UserCustomID    *string   `db:"user_custom_id" table:"users" column:"custom_id"`
	UserEmail       string    `db:"user_email"     table:"users" column:"email"`
	model.Metadata
}

func (Booking) GetJoinQuery() string {
	return "JOIN users ON users.id = bookings.user_id"
}
