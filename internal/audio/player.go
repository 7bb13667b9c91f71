// Package audio plays the click feedback of the ripple button.
package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
)

// DefaultSampleRate is the rate the speaker runs at.
const DefaultSampleRate = beep.SampleRate(44100)

const resampleQuality = 4

// ErrUnsupported is returned by Decode for files it has no decoder for.
var ErrUnsupported = errors.New("unsupported file type")

// Decode reads a wav, mp3 or flac file fully into memory.
func Decode(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrUnsupported, ext)
	}
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return buf, nil
}

// Player holds the current click sound and plays it on the speaker.
type Player struct {
	rate  beep.SampleRate
	click *beep.Buffer
	ready bool
}

// NewPlayer returns a player with the synthesized click loaded. The speaker
// is not touched until Init.
func NewPlayer(rate beep.SampleRate) *Player {
	click := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	click.Append(ClickSound(rate))
	return &Player{rate: rate, click: click}
}

// Init opens the speaker. Until it succeeds the player stays silent.
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(time.Second/20)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.ready = true
	return nil
}

// Ready reports whether the speaker is open.
func (p *Player) Ready() bool { return p.ready }

// Load replaces the click with the sound in path. On error the current click
// is kept.
func (p *Player) Load(path string) error {
	buf, err := Decode(path)
	if err != nil {
		return err
	}
	if buf.Format().SampleRate != p.rate {
		res := beep.NewBuffer(beep.Format{SampleRate: p.rate, NumChannels: 2, Precision: 2})
		res.Append(beep.Resample(resampleQuality, buf.Format().SampleRate, p.rate, buf.Streamer(0, buf.Len())))
		buf = res
	}
	p.click = buf
	return nil
}

// ClickLen returns the length of the current click in samples.
func (p *Player) ClickLen() int { return p.click.Len() }

// PlayClick plays the current click over whatever is already playing.
func (p *Player) PlayClick() {
	if !p.ready || p.click.Len() == 0 {
		return
	}
	speaker.Play(p.click.Streamer(0, p.click.Len()))
}

// Close stops everything the player started.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
