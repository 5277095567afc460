package service

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"truyenhub_backend/internals/features/payment/topup/model"
	userModel "truyenhub_backend/internals/features/users/user/model"
)

// HandleTopupStatusWebhook dipanggil saat menerima notifikasi dari Midtrans.
// Kredit saldo HANYA pada transisi pending → paid; notifikasi settlement yang
// dikirim ulang gateway tidak boleh mengkredit dua kali.
func HandleTopupStatusWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fmt.Errorf("invalid payload")
	}

	var order model.TopupOrder
	if err := db.Where("order_id = ?", orderID).First(&order).Error; err != nil {
		log.Println("[ERROR] Topup order tidak ditemukan:", err)
		return fmt.Errorf("topup order %s not found", orderID)
	}

	raw, _ := json.Marshal(body)

	switch status {
	case "capture", "settlement":
		return db.Transaction(func(tx *gorm.DB) error {
			// Re-check status di dalam transaksi: webhook bisa datang dobel.
			var current model.TopupOrder
			if err := tx.Where("id = ? AND status = ?", order.ID, model.TopupStatusPending).
				First(&current).Error; err != nil {
				log.Printf("[INFO] Order %s sudah diproses, skip kredit", orderID)
				return nil
			}

			now := time.Now()
			updates := map[string]interface{}{
				"status":          model.TopupStatusPaid,
				"paid_at":         &now,
				"gateway_payload": raw,
			}
			if err := tx.Model(&current).Updates(updates).Error; err != nil {
				return err
			}

			res := tx.Model(&userModel.User{}).
				Where("id = ?", current.UserID).
				UpdateColumn("balance", gorm.Expr("balance + ?", current.CoinAmount))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("user %d not found for topup %s", current.UserID, orderID)
			}

			log.Printf("[SUCCESS] Topup %s paid: user=%d +%d xu", orderID, current.UserID, current.CoinAmount)
			return nil
		})

	case "expire", "cancel", "deny", "failure":
		updates := map[string]interface{}{
			"status":          model.TopupStatusFailed,
			"gateway_payload": raw,
		}
		return db.Model(&order).Updates(updates).Error

	default:
		log.Println("[INFO] Status tidak diproses:", status)
		return nil
	}
}
