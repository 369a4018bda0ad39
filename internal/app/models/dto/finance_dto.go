package dto

// CreateFinanceRequest records a fee payment for a student.
type CreateFinanceRequest struct {
	StudentID     int64   `json:"studentId" binding:"required"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate   string  `json:"paymentDate" binding:"required" example:"2026-08-29"`
	Status        string  `json:"status" binding:"required,oneof=PAID PENDING"`
	Description   string  `json:"description" binding:"required"`
	PaymentMethod *string `json:"paymentMethod"`
	ReceiptNumber *string `json:"receiptNumber"`
}

// UpdateFinanceStatusRequest mutates only the payment status.
type UpdateFinanceStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PAID PENDING"`
}

// FinanceListFilter narrows the finance listing.
type FinanceListFilter struct {
	StudentID int64  `form:"studentId"`
	Status    string `form:"status"`
}
