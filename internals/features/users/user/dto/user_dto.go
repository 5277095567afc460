package dto

// AdjustBalanceRequest: delta boleh negatif (koreksi manual oleh admin),
// tapi saldo akhir tidak boleh di bawah nol.
type AdjustBalanceRequest struct {
	Delta  int    `json:"delta" validate:"required"`
	Reason string `json:"reason" validate:"omitempty,max=255"`
}

type SetActiveRequest struct {
	IsActive bool `json:"is_active"`
}
