package keypad

import (
	"testing"
	"time"

	"github.com/padworks/keypad/pkg/hardware/memdev"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) now() time.Time { return f.t }

func (f *fakeClock) advance(d time.Duration) { f.t = f.t.Add(d) }

// newTestPad builds a controller over a memory device with a fake
// clock, so debounce, hold and sleep windows can be stepped precisely.
func newTestPad(n int) (*Controller, *memdev.Device, *fakeClock) {
	dev := memdev.New(n)
	pad := New(dev)
	clk := &fakeClock{t: time.Unix(1000, 0)}
	pad.now = clk.now
	pad.lastPress = clk.t
	return pad, dev, clk
}

func TestDebounceSuppressesChatter(t *testing.T) {
	pad, dev, clk := newTestPad(1)

	presses := 0
	if err := pad.OnPress(0, func(*Key) { presses++ }); err != nil {
		t.Fatalf("OnPress failed: %v", err)
	}

	// true@0ms, false@10ms, true@20ms: classic contact bounce.
	dev.Press(0)
	pad.Update()
	clk.advance(10 * time.Millisecond)
	dev.Release(0)
	pad.Update()
	clk.advance(10 * time.Millisecond)
	dev.Press(0)
	pad.Update()

	if presses != 1 {
		t.Errorf("Expected exactly 1 press fire, got %d", presses)
	}
	key, _ := pad.Key(0)
	if !key.Pressed() {
		t.Error("Logical state should stay pressed through the bounce")
	}

	// After the debounce window the raw state is honored again.
	clk.advance(200 * time.Millisecond)
	pad.Update()
	if presses != 1 {
		t.Errorf("Steady press must not re-fire, got %d", presses)
	}
}

func TestSingleFirePressAndHold(t *testing.T) {
	pad, dev, clk := newTestPad(4)

	presses, holds := 0, 0
	if err := pad.OnPress(2, func(*Key) { presses++ }); err != nil {
		t.Fatalf("OnPress failed: %v", err)
	}
	if err := pad.OnHold(2, func(*Key) { holds++ }); err != nil {
		t.Fatalf("OnHold failed: %v", err)
	}

	// Hold for 3x the default 750ms threshold.
	dev.Press(2)
	for i := 0; i < 23; i++ {
		pad.Update()
		clk.advance(100 * time.Millisecond)
	}

	if presses != 1 {
		t.Errorf("Expected 1 press fire, got %d", presses)
	}
	if holds != 1 {
		t.Errorf("Expected 1 hold fire, got %d", holds)
	}

	key, _ := pad.Key(2)
	if !key.Held() {
		t.Error("Key should report held")
	}
	if key.HeldFor() < key.HoldThreshold {
		t.Errorf("HeldFor %v below threshold %v", key.HeldFor(), key.HoldThreshold)
	}
}

func TestHoldRefiresOnNextSpan(t *testing.T) {
	pad, dev, clk := newTestPad(1)

	holds, releases := 0, 0
	if err := pad.OnHold(0, func(*Key) { holds++ }); err != nil {
		t.Fatalf("OnHold failed: %v", err)
	}
	if err := pad.OnRelease(0, func(*Key) { releases++ }); err != nil {
		t.Fatalf("OnRelease failed: %v", err)
	}

	span := func() {
		dev.Press(0)
		for i := 0; i < 10; i++ {
			pad.Update()
			clk.advance(100 * time.Millisecond)
		}
		dev.Release(0)
		pad.Update()
		clk.advance(200 * time.Millisecond)
		pad.Update()
	}

	span()
	if holds != 1 {
		t.Fatalf("First span: expected 1 hold fire, got %d", holds)
	}
	if releases != 1 {
		t.Fatalf("First span: expected 1 release fire, got %d", releases)
	}
	key, _ := pad.Key(0)
	if key.Held() || key.HeldFor() != 0 {
		t.Error("Release must clear held state")
	}

	span()
	if holds != 2 {
		t.Errorf("Hold guard is per span, not per lifetime: got %d fires", holds)
	}
	if releases != 2 {
		t.Errorf("Expected 2 release fires, got %d", releases)
	}
}

func TestIdleFiresNothing(t *testing.T) {
	pad, _, clk := newTestPad(2)

	fires := 0
	handler := func(*Key) { fires++ }
	for i := 0; i < 2; i++ {
		if err := pad.OnPress(i, handler); err != nil {
			t.Fatalf("OnPress failed: %v", err)
		}
		if err := pad.OnRelease(i, handler); err != nil {
			t.Fatalf("OnRelease failed: %v", err)
		}
		if err := pad.OnHold(i, handler); err != nil {
			t.Fatalf("OnHold failed: %v", err)
		}
	}

	for i := 0; i < 100; i++ {
		pad.Update()
		clk.advance(10 * time.Millisecond)
	}

	if fires != 0 {
		t.Errorf("Idle keypad fired %d callbacks", fires)
	}
	if !pad.NonePressed() {
		t.Error("No key should read pressed")
	}
}

func TestPressFiresAgainAfterRelease(t *testing.T) {
	pad, dev, clk := newTestPad(1)

	presses := 0
	if err := pad.OnPress(0, func(*Key) { presses++ }); err != nil {
		t.Fatalf("OnPress failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		dev.Press(0)
		pad.Update()
		clk.advance(200 * time.Millisecond)
		dev.Release(0)
		pad.Update()
		clk.advance(200 * time.Millisecond)
		pad.Update()
	}

	if presses != 3 {
		t.Errorf("Expected 3 press fires across 3 spans, got %d", presses)
	}
}

func TestHandlerReceivesItsKey(t *testing.T) {
	pad, dev, _ := newTestPad(4)

	var got *Key
	if err := pad.OnPress(3, func(k *Key) { got = k }); err != nil {
		t.Fatalf("OnPress failed: %v", err)
	}

	dev.Press(3)
	pad.Update()

	if got == nil {
		t.Fatal("Press handler never ran")
	}
	if got.Index() != 3 {
		t.Errorf("Handler got key %d, want 3", got.Index())
	}
	if !got.Raw() {
		t.Error("Raw reading should be pressed inside the handler tick")
	}
}
