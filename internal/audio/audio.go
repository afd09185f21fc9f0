// Package audio plays the application's sound clips through ebiten's audio
// context.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"go.uber.org/atomic"

	"github.com/mars-mission/mars/internal/config"
	"github.com/mars-mission/mars/internal/media"
)

// Player decodes every clip up front and starts a fresh ebiten player per
// Play call, so overlapping taps do not cut each other off.
type Player struct {
	ctx   *audio.Context
	clips map[media.Sound][]byte
	log   *slog.Logger

	muted  atomic.Bool
	volume atomic.Float64
	plays  atomic.Int64
}

// New creates the audio context and loads the configured clips. Only one
// Player may exist per process.
func New(cfg config.AudioConfig, log *slog.Logger) (*Player, error) {
	p := &Player{
		ctx:   audio.NewContext(cfg.SampleRate),
		clips: make(map[media.Sound][]byte, 2),
		log:   log,
	}
	p.muted.Store(cfg.Muted)
	p.volume.Store(cfg.Volume)

	if cfg.Tap == "" {
		p.clips[media.SoundTapMuted] = TapPCM(cfg.SampleRate)
	} else {
		pcm, err := decodeFile(cfg.Tap, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		p.clips[media.SoundTapMuted] = pcm
	}

	if cfg.Music != "" {
		pcm, err := decodeFile(cfg.Music, cfg.SampleRate)
		if err != nil {
			return nil, err
		}
		p.clips[media.SoundTheme] = pcm
	}

	for s, pcm := range p.clips {
		log.Info("sound loaded", "sound", s.String(), "bytes", len(pcm))
	}
	return p, nil
}

// Play starts s at volume scaled by the master volume. It never blocks.
func (p *Player) Play(s media.Sound, volume float64) {
	if p.muted.Load() {
		return
	}
	pcm, ok := p.clips[s]
	if !ok {
		p.log.Debug("sound not loaded", "sound", s.String())
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(volume * p.volume.Load())
	player.Play()
	p.plays.Inc()
}

func (p *Player) SetMuted(muted bool) { p.muted.Store(muted) }

func (p *Player) SetVolume(v float64) { p.volume.Store(v) }

// Plays returns how many clips have been started.
func (p *Player) Plays() int64 { return p.plays.Load() }

// decodeFile reads a WAV or MP3 file and resamples it to 16-bit stereo
// PCM at sampleRate.
func decodeFile(path string, sampleRate int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, media.NewAssetError("read sound", path, err)
	}

	var stream io.Reader
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	default:
		err = fmt.Errorf("unsupported format %q", ext)
	}
	if err != nil {
		return nil, media.NewAssetError("decode sound", path, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, media.NewAssetError("decode sound", path, err)
	}
	return pcm, nil
}
