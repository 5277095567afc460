package service

import (
	"errors"
	"fmt"
)

// Taksonomi error core. Controller yang memetakan ke status HTTP; service
// tidak tahu-menahu soal fiber.
var (
	// ErrContentNotFound dan ErrChapterNotFound sengaja dibedakan: client
	// menampilkan pesan "truyện không tồn tại" vs "chương không tồn tại".
	ErrContentNotFound = errors.New("content not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrUserNotFound    = errors.New("user not found")

	// ErrNotPurchasable: chapter tidak terkunci atau tidak punya harga.
	ErrNotPurchasable = errors.New("chapter is not purchasable")

	// ErrAlreadyUnlocked: ledger sudah punya baris (user, chapter).
	ErrAlreadyUnlocked = errors.New("chapter already unlocked")
)

// InsufficientFundsError membawa saldo sekarang dan harga yang dibutuhkan,
// supaya client bisa menampilkan prompt isi xu.
type InsufficientFundsError struct {
	Balance  int
	Required int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: have %d xu, need %d xu", e.Balance, e.Required)
}

// AsInsufficientFunds membongkar err menjadi *InsufficientFundsError bila bisa.
func AsInsufficientFunds(err error) (*InsufficientFundsError, bool) {
	var ife *InsufficientFundsError
	if errors.As(err, &ife) {
		return ife, true
	}
	return nil, false
}
