package models

import "time"

// Student represents a resident registered in the paying-guest facility.
// Email and room number are unique across all students; the schema enforces
// both with unique constraints.
type Student struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	RoomNo    string    `db:"room_no" json:"roomNo"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt time.Time `db:"updated_at" json:"updatedAt"`
}
