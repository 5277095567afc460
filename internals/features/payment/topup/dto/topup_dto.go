package dto

// CreateTopupRequest: amount = rupiah yang dibayar. Rate konversi xu diatur
// server-side (lihat controller), client tidak boleh menentukan sendiri.
type CreateTopupRequest struct {
	Amount int `json:"amount" validate:"required,gte=10000"`
}
