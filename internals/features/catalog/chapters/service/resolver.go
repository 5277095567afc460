package service

import (
	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
)

// ChapterService membungkus resolusi chapter, access gate, dan transaksi
// unlock di atas sebuah Store.
type ChapterService struct {
	store Store
}

func NewChapterService(store Store) *ChapterService {
	return &ChapterService{store: store}
}

// ResolveByID — mode 1: chapter id langsung. Konten induk ikut dikembalikan
// karena format isi (page-map vs HTML) ditentukan oleh Content.Type, bukan
// oleh baris chapter_contents.
func (s *ChapterService) ResolveByID(chapterID uint) (*contentModel.Content, *chapterModel.Chapter, error) {
	ch, err := s.store.GetChapter(chapterID)
	if err != nil {
		return nil, nil, err
	}
	content, err := s.store.GetContent(ch.ContentID)
	if err != nil {
		return nil, nil, err
	}
	return content, ch, nil
}

// ResolveByNumber — mode 2: scan chapter milik konten, cari Number yang sama.
// Konten tidak ada → ErrContentNotFound; nomor tidak ada → ErrChapterNotFound.
func (s *ChapterService) ResolveByNumber(contentID uint, number int) (*contentModel.Content, *chapterModel.Chapter, error) {
	content, err := s.store.GetContent(contentID)
	if err != nil {
		return nil, nil, err
	}
	chapters, err := s.store.ListChapters(contentID)
	if err != nil {
		return nil, nil, err
	}
	for i := range chapters {
		if chapters[i].Number == number {
			return content, &chapters[i], nil
		}
	}
	return nil, nil, ErrChapterNotFound
}

// ResolveBySlug — mode 3: resolve konten dari slug judul dulu, lalu mode 2.
func (s *ChapterService) ResolveBySlug(slug string, number int) (*contentModel.Content, *chapterModel.Chapter, error) {
	content, err := s.store.GetContentBySlug(slug)
	if err != nil {
		return nil, nil, err
	}
	return s.ResolveByNumber(content.ID, number)
}
