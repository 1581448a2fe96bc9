package darkframe

import (
	"testing"
	"time"
)

func TestLoginLimiterAllowsUnderMax(t *testing.T) {
	l := NewLoginLimiter(3, time.Minute)
	for i := 0; i < 3; i++ {
		if !l.Check("1.2.3.4") {
			t.Fatalf("Check blocked after %d recorded failures", i)
		}
		l.Record("1.2.3.4")
	}
	if l.Check("1.2.3.4") {
		t.Error("Check allowed after max failures recorded")
	}
}

func TestLoginLimiterCheckDoesNotRecord(t *testing.T) {
	l := NewLoginLimiter(2, time.Minute)
	for i := 0; i < 10; i++ {
		if !l.Check("5.6.7.8") {
			t.Fatal("repeated Check calls must not count as attempts")
		}
	}
}

func TestLoginLimiterPerIP(t *testing.T) {
	l := NewLoginLimiter(1, time.Minute)
	l.Record("1.1.1.1")
	if l.Check("1.1.1.1") {
		t.Error("blocked IP passed Check")
	}
	if !l.Check("2.2.2.2") {
		t.Error("unrelated IP was blocked")
	}
}

func TestLoginLimiterWindowExpiry(t *testing.T) {
	l := NewLoginLimiter(1, 10*time.Millisecond)
	l.Record("9.9.9.9")
	if l.Check("9.9.9.9") {
		t.Fatal("expected block inside window")
	}
	time.Sleep(20 * time.Millisecond)
	if !l.Check("9.9.9.9") {
		t.Error("expected old failures to expire")
	}
}
