package models

import "time"

// PaymentStatus represents the status of a fee payment record.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "PAID"
	PaymentPending PaymentStatus = "PENDING"
)

// Valid returns true when the status is a supported value.
func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPaid, PaymentPending:
		return true
	default:
		return false
	}
}

// FinanceRecord defines a fee payment entry for a student. Append-mostly;
// only the status is mutated after creation.
type FinanceRecord struct {
	ID            int64         `json:"id" db:"id"`
	StudentID     int64         `json:"studentId" db:"student_id"`
	Amount        float64       `json:"amount" db:"amount" example:"150"`
	PaymentDate   time.Time     `json:"paymentDate" db:"payment_date"`
	Status        PaymentStatus `json:"status" db:"status"`
	Description   string        `json:"description" db:"description"`
	PaymentMethod *string       `json:"paymentMethod,omitempty" db:"payment_method"`
	ReceiptNumber *string       `json:"receiptNumber,omitempty" db:"receipt_number"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
}
