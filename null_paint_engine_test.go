package spriteanim

import (
	"bytes"
	"context"
	"image"
	"strings"
	"testing"
)

func TestPlayOnNullPlatform(t *testing.T) {
	log, _ := newNullLogger()
	decoder := &fakeDecoder{}
	cfg := DefaultConfig()
	cfg.MaxTicks = 7
	var out bytes.Buffer

	if err := Play(context.Background(), cfg, NullPlatform(1000, log), decoder, &out, log); err != nil {
		t.Fatalf("Play: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("printed %d lines, want 7", len(lines))
	}
	if lines[6] != "Animation Frame: 1" {
		t.Errorf("last line %q, want Animation Frame: 1", lines[6])
	}
}

func TestNullTextureKeepsSize(t *testing.T) {
	pixmap, _ := NewPixmap(300, 37, RGB32)
	texture, err := NullPaintEngine().CreateTexture(pixmap)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if texture.Size() != (image.Point{300, 37}) {
		t.Errorf("size %v, want (300,37)", texture.Size())
	}
}
