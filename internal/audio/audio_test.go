package audio

import (
	"io/fs"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-snake/internal/assets"
)

func TestDecodeBuiltinEat(t *testing.T) {
	data, err := fs.ReadFile(assets.Builtin(), assets.EatSoundFile)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		rate beep.SampleRate
	}{
		{22050},
		{44100},
	}
	for _, tt := range tests {
		buf, err := Decode(data, tt.rate)
		if err != nil {
			t.Fatalf("Decode at %d: %v", tt.rate, err)
		}
		// The built-in effect is 80ms long.
		want := tt.rate.N(80 * time.Millisecond)
		if diff := buf.Len() - want; diff < -64 || diff > 64 {
			t.Errorf("rate %d: len = %d, want about %d", tt.rate, buf.Len(), want)
		}
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte("not a wav file"), 44100); err == nil {
		t.Error("garbage should not decode")
	}
}

func TestOpenDisabledIsSilent(t *testing.T) {
	p := Open(Options{Enabled: false, Sounds: map[Effect][]byte{EffectEat: []byte("x")}})
	if _, ok := p.(Silent); !ok {
		t.Fatalf("Open(disabled) = %T, want Silent", p)
	}
	p.Play(EffectEat)
	if err := p.Close(); err != nil {
		t.Error(err)
	}
}

func TestOpenWithoutSoundsIsSilent(t *testing.T) {
	p := Open(Options{Enabled: true, Sounds: map[Effect][]byte{EffectEat: []byte("garbage")}})
	if _, ok := p.(Silent); !ok {
		t.Fatalf("Open(undecodable) = %T, want Silent", p)
	}
}
