package darkframe

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memKV is an in-memory KV backend for tests.
type memKV struct {
	data    map[string][]byte
	failSet bool
}

func newMemKV() *memKV {
	return &memKV{data: make(map[string][]byte)}
}

func (m *memKV) Get(key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return v, nil
}

func (m *memKV) Set(key string, value []byte) error {
	if m.failSet {
		return errors.New("disk full")
	}
	m.data[key] = value
	return nil
}

func (m *memKV) Close() error { return nil }

func TestLoadSeedsWhenEmpty(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()

	pics := s.Pictures()
	posts := s.Posts()
	require.NotEmpty(t, pics)
	require.NotEmpty(t, posts)
	for _, p := range pics {
		assert.NotEmpty(t, p.ID, "seed picture should get an id back-filled")
	}
	for _, p := range posts {
		assert.NotEmpty(t, p.ID, "seed post should get an id back-filled")
	}
	// The repaired documents are written back.
	assert.Contains(t, kv.data, keyPictures)
	assert.Contains(t, kv.data, keyPosts)
	assert.Empty(t, s.AdminPassword())
}

func TestLoadMalformedFallsBackToSeed(t *testing.T) {
	kv := newMemKV()
	kv.data[keyPictures] = []byte("{not json")
	kv.data[keyPosts] = []byte("[[[")

	s := NewStore(kv)
	s.Load()

	assert.NotEmpty(t, s.Pictures())
	assert.NotEmpty(t, s.Posts())
}

func TestLoadBackfillsOnlyMissingIDs(t *testing.T) {
	kv := newMemKV()
	stored := []Picture{
		{ID: "keep-me", URL: "https://example.com/a.jpg"},
		{ID: "", URL: "https://example.com/b.jpg"},
	}
	data, err := json.Marshal(stored)
	require.NoError(t, err)
	kv.data[keyPictures] = data

	s := NewStore(kv)
	s.Load()

	pics := s.Pictures()
	require.Len(t, pics, 2)
	assert.Equal(t, "keep-me", pics[0].ID)
	assert.NotEmpty(t, pics[1].ID)

	var persisted []Picture
	require.NoError(t, json.Unmarshal(kv.data[keyPictures], &persisted))
	assert.Equal(t, "keep-me", persisted[0].ID)
	assert.NotEmpty(t, persisted[1].ID)
}

func TestCreatePictureMissingURL(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()
	before := len(s.Pictures())

	_, err := s.CreatePicture("   ", "desc", []string{"night"})
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Len(t, s.Pictures(), before)
}

func TestCreatePostMissingFields(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()
	before := len(s.Posts())

	_, err := s.CreatePost("", "https://example.com/x.jpg", "body")
	assert.ErrorIs(t, err, ErrMissingField)
	_, err = s.CreatePost("Title", "  ", "body")
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Len(t, s.Posts(), before)
}

func TestCreatePrependsWithDistinctIDs(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()

	first, err := s.CreatePicture("https://example.com/1.jpg", "one", nil)
	require.NoError(t, err)
	second, err := s.CreatePicture("https://example.com/2.jpg", "two", nil)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	pics := s.Pictures()
	assert.Equal(t, second.ID, pics[0].ID, "newest picture comes first")
	assert.Equal(t, first.ID, pics[1].ID)
}

func TestCreateRoundTripsThroughKV(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()

	post, err := s.CreatePost("Ghost lights", "https://example.com/g.jpg", "## Night\n*shutter* open")
	require.NoError(t, err)

	reloaded := NewStore(kv)
	reloaded.Load()
	got, err := reloaded.FindPost(post.ID)
	require.NoError(t, err)
	assert.Equal(t, post, got)
}

func TestWriteFailureKeepsSessionWorking(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()
	kv.failSet = true

	pic, err := s.CreatePicture("https://example.com/f.jpg", "flaky disk", nil)
	require.NoError(t, err, "a persistence failure must not surface to the admin")

	got, err := s.FindPicture(pic.ID)
	require.NoError(t, err)
	assert.Equal(t, pic, got)
}

func TestFindMissing(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()

	_, err := s.FindPicture("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = s.FindPost("no-such-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetAdminPassword(t *testing.T) {
	kv := newMemKV()
	s := NewStore(kv)
	s.Load()

	err := s.SetAdminPassword("not-the-phrase")
	assert.ErrorIs(t, err, ErrBadPassphrase)
	assert.Empty(t, s.AdminPassword())

	require.NoError(t, s.SetAdminPassword("sotlumavresmurcoparutcal"))
	assert.Equal(t, "sotlumavresmurcoparutcal", s.AdminPassword())

	reloaded := NewStore(kv)
	reloaded.Load()
	assert.Equal(t, "sotlumavresmurcoparutcal", reloaded.AdminPassword())
}
