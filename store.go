package darkframe

import (
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("darkframe: not found")
	// ErrMissingField is returned when a create is attempted without a
	// required field. Nothing is persisted and no identifier is consumed.
	ErrMissingField = errors.New("darkframe: missing required field")
)

// Store is the sole owner of the in-memory picture and post collections plus
// the admin password. The KV backend is read once in Load; after that memory
// is authoritative and every successful mutation writes the whole collection
// back (write-through, no batching). Write failures are logged and swallowed:
// the session keeps working, the change just won't survive a restart.
type Store struct {
	mu    sync.RWMutex
	kv    KV
	pics  []Picture
	posts []BlogPost
	pw    string
}

// NewStore creates a Store over kv. Call Load before serving.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Load reads all three documents. A missing key or malformed JSON falls back
// to the seed content, never an error. Entities missing an ID (seed content,
// or data written by the original site) get one back-filled here, preserving
// order and any existing identifiers, and the repaired document is persisted.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pics = loadPictures(s.kv)
	if backfillPictureIDs(s.pics) {
		s.persistPictures()
	}
	s.posts = loadPosts(s.kv)
	if backfillPostIDs(s.posts) {
		s.persistPosts()
	}
	s.pw = loadPassword(s.kv)
}

func loadPictures(kv KV) []Picture {
	raw, err := kv.Get(keyPictures)
	if err != nil {
		return seedPictures()
	}
	var pics []Picture
	if err := json.Unmarshal(raw, &pics); err != nil {
		return seedPictures()
	}
	return pics
}

func loadPosts(kv KV) []BlogPost {
	raw, err := kv.Get(keyPosts)
	if err != nil {
		return seedPosts()
	}
	var posts []BlogPost
	if err := json.Unmarshal(raw, &posts); err != nil {
		return seedPosts()
	}
	return posts
}

func loadPassword(kv KV) string {
	raw, err := kv.Get(keyAdminPW)
	if err != nil {
		return ""
	}
	var pw string
	if err := json.Unmarshal(raw, &pw); err != nil {
		return ""
	}
	return pw
}

func backfillPictureIDs(pics []Picture) bool {
	filled := false
	for i := range pics {
		if pics[i].ID == "" {
			pics[i].ID = uuid.NewString()
			filled = true
		}
	}
	return filled
}

func backfillPostIDs(posts []BlogPost) bool {
	filled := false
	for i := range posts {
		if posts[i].ID == "" {
			posts[i].ID = uuid.NewString()
			filled = true
		}
	}
	return filled
}

// CreatePicture validates, assigns a fresh identifier, prepends the picture
// (newest first), persists, and returns the created entity so the caller can
// navigate straight to its detail view. URL is required.
func (s *Store) CreatePicture(url, description string, tags []string) (Picture, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return Picture{}, ErrMissingField
	}
	p := Picture{
		ID:          uuid.NewString(),
		URL:         url,
		Description: description,
		Tags:        FilterEmpty(tags),
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pics = append([]Picture{p}, s.pics...)
	s.persistPictures()
	return p, nil
}

// CreatePost validates, assigns a fresh identifier, prepends the post,
// persists, and returns the created entity. Title and image are required;
// the body may be empty.
func (s *Store) CreatePost(title, image, body string) (BlogPost, error) {
	title = strings.TrimSpace(title)
	image = strings.TrimSpace(image)
	if title == "" || image == "" {
		return BlogPost{}, ErrMissingField
	}
	p := BlogPost{
		ID:    uuid.NewString(),
		Title: title,
		Image: image,
		Body:  body,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]BlogPost{p}, s.posts...)
	s.persistPosts()
	return p, nil
}

// FindPicture returns the picture with the given id. Collections stay at
// personal-site scale, so a linear scan is fine.
func (s *Store) FindPicture(id string) (Picture, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.pics {
		if p.ID == id {
			return p, nil
		}
	}
	return Picture{}, ErrNotFound
}

// FindPost returns the post with the given id.
func (s *Store) FindPost(id string) (BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return BlogPost{}, ErrNotFound
}

// Pictures returns a snapshot of the gallery, newest first.
func (s *Store) Pictures() []Picture {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Picture, len(s.pics))
	copy(out, s.pics)
	return out
}

// Posts returns a snapshot of the blog, newest first.
func (s *Store) Posts() []BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// AdminPassword returns the stored admin password, or "" while unset.
func (s *Store) AdminPassword() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pw
}

// SetAdminPassword stores a new admin password after checking it against the
// passphrase gate. Used both for first-time setup and rotation.
func (s *Store) SetAdminPassword(candidate string) error {
	if !IsValidNewPassword(candidate) {
		return ErrBadPassphrase
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pw = candidate
	if data, err := json.Marshal(candidate); err == nil {
		if err := s.kv.Set(keyAdminPW, data); err != nil {
			log.Printf("darkframe: persist password: %v", err)
		}
	}
	return nil
}

// persistPictures writes the full collection through to the KV backend.
// Callers hold the write lock.
func (s *Store) persistPictures() {
	data, err := json.Marshal(s.pics)
	if err != nil {
		log.Printf("darkframe: encode pictures: %v", err)
		return
	}
	if err := s.kv.Set(keyPictures, data); err != nil {
		log.Printf("darkframe: persist pictures: %v", err)
	}
}

func (s *Store) persistPosts() {
	data, err := json.Marshal(s.posts)
	if err != nil {
		log.Printf("darkframe: encode posts: %v", err)
		return
	}
	if err := s.kv.Set(keyPosts, data); err != nil {
		log.Printf("darkframe: persist posts: %v", err)
	}
}
