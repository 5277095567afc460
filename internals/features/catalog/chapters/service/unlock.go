package service

import (
	"errors"
	"log"
)

// Unlock menukar saldo xu dengan baris ledger permanen untuk (user, chapter).
//
// Urutan eksekusi: debit dulu, baru insert ledger. Kalau insert gagal, debit
// dikembalikan (credit kompensasi) sebelum error diteruskan — user tidak
// boleh terpotong saldo tanpa baris unlock. Gagal kompensasi adalah satu-
// satunya kondisi fatal di core: di-log keras untuk rekonsiliasi manual.
//
// Race dua request bersamaan ditahan dua lapis: debit adalah UPDATE
// kondisional tunggal, dan ledger punya unique index — duplikat insert
// berubah jadi Conflict setelah refund.
func (s *ChapterService) Unlock(userID, chapterID uint) (newBalance int, err error) {
	ch, err := s.store.GetChapter(chapterID)
	if err != nil {
		return 0, err
	}

	if !ch.IsLocked || ch.UnlockPrice == nil || *ch.UnlockPrice <= 0 {
		return 0, ErrNotPurchasable
	}
	price := *ch.UnlockPrice

	// Cek "sudah dibeli" SEBELUM menyentuh saldo.
	already, err := s.store.HasUnlock(userID, chapterID)
	if err != nil {
		return 0, err
	}
	if already {
		return 0, ErrAlreadyUnlocked
	}

	newBalance, err = s.store.DebitBalance(userID, price)
	if err != nil {
		return 0, err
	}

	if err := s.store.InsertUnlock(userID, chapterID); err != nil {
		if creditErr := s.store.CreditBalance(userID, price); creditErr != nil {
			log.Printf("[FATAL] refund gagal setelah insert ledger gagal: user=%d chapter=%d price=%d insertErr=%v creditErr=%v — saldo user tidak konsisten, perlu rekonsiliasi manual",
				userID, chapterID, price, err, creditErr)
			return 0, creditErr
		}
		if errors.Is(err, ErrAlreadyUnlocked) {
			// Kalah race dari request kembar: saldo sudah dikembalikan,
			// laporkan Conflict seperti biasa.
			return 0, ErrAlreadyUnlocked
		}
		return 0, err
	}

	return newBalance, nil
}
