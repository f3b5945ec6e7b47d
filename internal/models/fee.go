package models

import "time"

// FeeStatusPaid is the status assigned to fees on creation.
const FeeStatusPaid = "PAID"

// Fee records a single payment made by a student. The student relationship
// is a plain foreign-key value; the related Student row is never embedded in
// the fee representation.
type Fee struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"studentId"`
	Amount      float64   `db:"amount" json:"amount"`
	Status      string    `db:"status" json:"status"`
	PaymentDate Date      `db:"payment_date" json:"paymentDate"`
	Mode        string    `db:"mode" json:"mode"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// FeeFilter encapsulates the optional filters for listing fees.
type FeeFilter struct {
	Mode   string
	Status string
	From   *Date
	To     *Date
}
