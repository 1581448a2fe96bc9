package darkframe

import (
	"sync"
	"time"
)

// previewRotator drives the home-page slideshow. A fixed-interval tick
// advances an offset; the home view picks three slides starting at that
// offset. Purely presentational; it never touches mutation logic.
type previewRotator struct {
	mu   sync.Mutex
	tick int
	done chan struct{}
	once sync.Once
}

// newPreviewRotator starts the ticker immediately. Stop must be called on
// shutdown; it is unconditional and safe to call more than once.
func newPreviewRotator(interval time.Duration) *previewRotator {
	r := &previewRotator{done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ticker.C:
				r.mu.Lock()
				r.tick++
				r.mu.Unlock()
			case <-r.done:
				ticker.Stop()
				return
			}
		}
	}()
	return r
}

// Tick returns the current rotation offset.
func (r *previewRotator) Tick() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.tick
}

// Stop halts the ticker goroutine.
func (r *previewRotator) Stop() {
	r.once.Do(func() { close(r.done) })
}

// previewSlides assembles the slideshow sources: picture URLs first, then
// post images, clamped to nine slides.
func previewSlides(pics []Picture, posts []BlogPost) []string {
	sources := make([]string, 0, len(pics)+len(posts))
	for _, p := range pics {
		sources = append(sources, p.URL)
	}
	for _, p := range posts {
		sources = append(sources, p.Image)
	}
	// At most nine slides rotate; fewer than three just means repeats.
	n := len(sources)
	if n > 9 {
		n = 9
	}
	return sources[:n]
}
