// Package audio plays the game's cues through the system speaker.
// Sounds are synthesized; nothing is loaded from disk. Without an audio
// device every call is a silent no-op.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/dasher/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager manages all game audio.
// A nil *SoundManager is valid and plays nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	music       *beep.Ctrl
	defeat      *beep.Ctrl
	initialized bool

	musicOn  bool
	defeatOn bool
}

// NewSoundManager creates a sound manager. Call Initialize to open the device.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Loops requested before initialization
// start now.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true

	if sm.musicOn {
		sm.music = sm.startLoop(sm.music, NewMusic)
	}
	if sm.defeatOn {
		sm.defeat = sm.startLoop(sm.defeat, NewDefeat)
	}
	return nil
}

// Cleanup stops all sounds and closes the speaker.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	sm.mixer.Clear()
	sm.music, sm.defeat = nil, nil
	sm.initialized = false
}

// startLoop resumes ctrl or adds a fresh looping track. Callers hold mu.
func (sm *SoundManager) startLoop(ctrl *beep.Ctrl, track func(beep.SampleRate) beep.Streamer) *beep.Ctrl {
	if !sm.initialized {
		return ctrl
	}
	speaker.Lock()
	defer speaker.Unlock()
	if ctrl != nil {
		ctrl.Paused = false
		return ctrl
	}
	ctrl = &beep.Ctrl{Streamer: track(sampleRate)}
	sm.mixer.Add(ctrl)
	return ctrl
}

func (sm *SoundManager) pauseLoop(ctrl *beep.Ctrl) {
	if ctrl == nil || !sm.initialized {
		return
	}
	speaker.Lock()
	ctrl.Paused = true
	speaker.Unlock()
}

func (sm *SoundManager) playOnce(s beep.Streamer) {
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// PlayHit plays the damage cue.
func (sm *SoundManager) PlayHit() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playOnce(NewHit(sampleRate))
}

// PlayPickup plays the heal cue.
func (sm *SoundManager) PlayPickup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.playOnce(NewPickup(sampleRate))
}

// StartMusic loops the background track.
func (sm *SoundManager) StartMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.musicOn = true
	sm.music = sm.startLoop(sm.music, NewMusic)
}

// StopMusic pauses the background track.
func (sm *SoundManager) StopMusic() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.musicOn = false
	sm.pauseLoop(sm.music)
}

// StartDefeat loops the game-over track.
func (sm *SoundManager) StartDefeat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.defeatOn = true
	sm.defeat = sm.startLoop(sm.defeat, NewDefeat)
}

// StopDefeat pauses the game-over track.
func (sm *SoundManager) StopDefeat() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.defeatOn = false
	sm.pauseLoop(sm.defeat)
}

// MusicPlaying reports whether the background track is requested.
func (sm *SoundManager) MusicPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.musicOn
}

// DefeatPlaying reports whether the game-over track is requested.
func (sm *SoundManager) DefeatPlaying() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.defeatOn
}

// HandleCue realizes a game cue. Cues without a sound are ignored.
func (sm *SoundManager) HandleCue(c core.Cue) {
	if sm == nil {
		return
	}
	switch c {
	case core.CueHit:
		sm.PlayHit()
	case core.CuePickup:
		sm.PlayPickup()
	case core.CueMusicStart:
		sm.StartMusic()
	case core.CueMusicStop:
		sm.StopMusic()
	case core.CueDefeatStart:
		sm.StartDefeat()
	case core.CueDefeatStop:
		sm.StopDefeat()
	}
}

// HandleCues realizes cues in order.
func (sm *SoundManager) HandleCues(cues []core.Cue) {
	for _, c := range cues {
		sm.HandleCue(c)
	}
}
