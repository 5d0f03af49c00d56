package viz

import "testing"

func TestSpriteNotReady(t *testing.T) {
	s := LoadSprite("")
	if s.Ready() {
		t.Error("expected sprite without a source to never become ready")
	}
	if s.Image() != nil {
		t.Error("expected nil image before load")
	}

	c := NewCanvas(10, 5)
	if s.Stamp(c, 10, 10, 0, 11) {
		t.Error("expected stamp to refuse before the image is ready")
	}
	if countDots(c) != 0 {
		t.Error("expected canvas untouched by a not-ready stamp")
	}
}

func TestStampRejectsBadSize(t *testing.T) {
	s := &Sprite{}
	c := NewCanvas(10, 5)
	if s.Stamp(c, 10, 10, 0, 0) {
		t.Error("expected stamp to refuse a non-positive size")
	}
}
