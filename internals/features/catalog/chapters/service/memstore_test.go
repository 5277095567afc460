package service

import (
	"sort"

	chapterModel "truyenhub_backend/internals/features/catalog/chapters/model"
	contentModel "truyenhub_backend/internals/features/catalog/contents/model"
	commentModel "truyenhub_backend/internals/features/community/comments/model"
)

// memStore: implementasi Store in-memory untuk test service, tanpa DB.
// Error bisa disuntik per method lewat field *Err.
type memStore struct {
	contents map[uint]*contentModel.Content
	chapters map[uint]*chapterModel.Chapter
	rows     map[uint][]chapterModel.ChapterContent
	comments map[uint][]commentModel.Comment
	balances map[uint]int
	unlocks  map[[2]uint]bool
	history  map[[2]uint]uint // (user, content) -> chapter terakhir

	chapterViews map[uint]int64
	contentViews map[uint]int64

	insertUnlockErr error
	creditErr       error
}

func newMemStore() *memStore {
	return &memStore{
		contents:     map[uint]*contentModel.Content{},
		chapters:     map[uint]*chapterModel.Chapter{},
		rows:         map[uint][]chapterModel.ChapterContent{},
		comments:     map[uint][]commentModel.Comment{},
		balances:     map[uint]int{},
		unlocks:      map[[2]uint]bool{},
		history:      map[[2]uint]uint{},
		chapterViews: map[uint]int64{},
		contentViews: map[uint]int64{},
	}
}

func (m *memStore) addContent(c contentModel.Content) *contentModel.Content {
	cp := c
	m.contents[cp.ID] = &cp
	return &cp
}

func (m *memStore) addChapter(ch chapterModel.Chapter, rows ...chapterModel.ChapterContent) *chapterModel.Chapter {
	cp := ch
	m.chapters[cp.ID] = &cp
	m.rows[cp.ID] = rows
	return &cp
}

func (m *memStore) GetContent(id uint) (*contentModel.Content, error) {
	c, ok := m.contents[id]
	if !ok {
		return nil, ErrContentNotFound
	}
	return c, nil
}

func (m *memStore) GetContentBySlug(slug string) (*contentModel.Content, error) {
	for _, c := range m.contents {
		if c.Slug == slug {
			return c, nil
		}
	}
	return nil, ErrContentNotFound
}

func (m *memStore) IncrementContentViews(id uint) error {
	m.contentViews[id]++
	return nil
}

func (m *memStore) GetChapter(id uint) (*chapterModel.Chapter, error) {
	ch, ok := m.chapters[id]
	if !ok {
		return nil, ErrChapterNotFound
	}
	return ch, nil
}

func (m *memStore) ListChapters(contentID uint) ([]chapterModel.Chapter, error) {
	var out []chapterModel.Chapter
	for _, ch := range m.chapters {
		if ch.ContentID == contentID {
			out = append(out, *ch)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (m *memStore) GetChapterContents(chapterID uint) ([]chapterModel.ChapterContent, error) {
	return m.rows[chapterID], nil
}

func (m *memStore) IncrementChapterViews(id uint) error {
	m.chapterViews[id]++
	return nil
}

func (m *memStore) HasUnlock(userID, chapterID uint) (bool, error) {
	return m.unlocks[[2]uint{userID, chapterID}], nil
}

func (m *memStore) InsertUnlock(userID, chapterID uint) error {
	if m.insertUnlockErr != nil {
		return m.insertUnlockErr
	}
	key := [2]uint{userID, chapterID}
	if m.unlocks[key] {
		return ErrAlreadyUnlocked
	}
	m.unlocks[key] = true
	return nil
}

func (m *memStore) DebitBalance(userID uint, amount int) (int, error) {
	bal, ok := m.balances[userID]
	if !ok {
		return 0, ErrUserNotFound
	}
	if bal < amount {
		return 0, &InsufficientFundsError{Balance: bal, Required: amount}
	}
	m.balances[userID] = bal - amount
	return m.balances[userID], nil
}

func (m *memStore) CreditBalance(userID uint, amount int) error {
	if m.creditErr != nil {
		return m.creditErr
	}
	m.balances[userID] += amount
	return nil
}

func (m *memStore) UpsertReadingHistory(userID, contentID, chapterID uint) error {
	m.history[[2]uint{userID, contentID}] = chapterID
	return nil
}

func (m *memStore) ListChapterComments(chapterID uint) ([]commentModel.Comment, error) {
	return m.comments[chapterID], nil
}

var _ Store = (*memStore)(nil)
