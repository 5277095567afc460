package service

import (
	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	commentModel "truyenhub_backend/internals/features/community/comments/model"
)

// ChapterRef adalah petunjuk navigasi prev/next.
type ChapterRef struct {
	ID     uint   `json:"id"`
	Number int    `json:"number"`
	Title  string `json:"title,omitempty"`
}

// ReadResult adalah keluaran access gate. Saat terkunci: Content nil,
// Comments nil, Prev/Next nil — isi dan status kunci tidak pernah muncul
// bersamaan dalam satu response.
type ReadResult struct {
	Chapter    *chapterModel.Chapter  `json:"chapter"`
	IsUnlocked bool                   `json:"is_unlocked"`
	Content    *ChapterPayload        `json:"content"`
	Prev       *ChapterRef            `json:"prev,omitempty"`
	Next       *ChapterRef            `json:"next,omitempty"`
	Comments   []commentModel.Comment `json:"comments,omitempty"`
}

// ReadChapter adalah access gate (keputusan rilis isi chapter):
//
//	terkunci == false            → buka
//	user anonim                  → tutup
//	selain itu                   → cek ledger (user, chapter)
//
// Saat terbuka: view chapter naik (unconditional, tiap fetch), reading
// history di-upsert bila ada user, dan response membawa isi + navigasi +
// komentar. Saat tertutup: hanya metadata + harga, content nil, view TIDAK
// naik.
func (s *ChapterService) ReadChapter(content *contentModel.Content, ch *chapterModel.Chapter, userID *uint) (*ReadResult, error) {
	unlocked := !ch.IsLocked
	if !unlocked && userID != nil {
		has, err := s.store.HasUnlock(*userID, ch.ID)
		if err != nil {
			return nil, err
		}
		unlocked = has
	}

	if !unlocked {
		return &ReadResult{Chapter: ch, IsUnlocked: false, Content: nil}, nil
	}

	if err := s.store.IncrementChapterViews(ch.ID); err != nil {
		return nil, err
	}
	if userID != nil {
		if err := s.store.UpsertReadingHistory(*userID, content.ID, ch.ID); err != nil {
			return nil, err
		}
	}

	rows, err := s.store.GetChapterContents(ch.ID)
	if err != nil {
		return nil, err
	}
	payload := BuildPayload(content.Type, rows)

	prev, next, err := s.neighbors(content.ID, ch.Number)
	if err != nil {
		return nil, err
	}

	comments, err := s.store.ListChapterComments(ch.ID)
	if err != nil {
		return nil, err
	}

	return &ReadResult{
		Chapter:    ch,
		IsUnlocked: true,
		Content:    payload,
		Prev:       prev,
		Next:       next,
		Comments:   comments,
	}, nil
}

// neighbors mencari tetangga langsung dari nomor chapter sekarang di daftar
// terurut ascending. Di ujung daftar, sisi itu nil — bukan error.
func (s *ChapterService) neighbors(contentID uint, number int) (prev, next *ChapterRef, err error) {
	chapters, err := s.store.ListChapters(contentID)
	if err != nil {
		return nil, nil, err
	}
	for i := range chapters {
		if chapters[i].Number != number {
			continue
		}
		if i > 0 {
			prev = refOf(chapters[i-1])
		}
		if i < len(chapters)-1 {
			next = refOf(chapters[i+1])
		}
		return prev, next, nil
	}
	return nil, nil, nil
}

func refOf(ch chapterModel.Chapter) *ChapterRef {
	return &ChapterRef{ID: ch.ID, Number: ch.Number, Title: ch.Title}
}
