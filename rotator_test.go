package darkframe

import (
	"testing"
	"time"
)

func TestPreviewRotatorAdvances(t *testing.T) {
	r := newPreviewRotator(5 * time.Millisecond)
	defer r.Stop()

	deadline := time.After(time.Second)
	for r.Tick() == 0 {
		select {
		case <-deadline:
			t.Fatal("rotator never ticked")
		case <-time.After(5 * time.Millisecond):
		}
	}
}

func TestPreviewRotatorStopIsIdempotent(t *testing.T) {
	r := newPreviewRotator(time.Millisecond)
	r.Stop()
	r.Stop()

	// Give a tick already racing the close a moment to drain.
	time.Sleep(10 * time.Millisecond)
	stopped := r.Tick()
	time.Sleep(20 * time.Millisecond)
	if got := r.Tick(); got != stopped {
		t.Errorf("rotator ticked after Stop: %d -> %d", stopped, got)
	}
}

func TestPreviewSlides(t *testing.T) {
	pics := []Picture{{URL: "p1"}, {URL: "p2"}}
	posts := []BlogPost{{Image: "b1"}}

	got := previewSlides(pics, posts)
	want := []string{"p1", "p2", "b1"}
	if len(got) != len(want) {
		t.Fatalf("previewSlides returned %d slides, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slide[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestPreviewSlidesClampsToNine(t *testing.T) {
	var pics []Picture
	for i := 0; i < 12; i++ {
		pics = append(pics, Picture{URL: "u"})
	}
	if got := previewSlides(pics, nil); len(got) != 9 {
		t.Errorf("previewSlides returned %d slides, want 9", len(got))
	}
}
