// internal/audio/cue.go
package audio

import (
	"encoding/binary"
	"math"

	"elemental-arena/internal/element"
	"elemental-arena/internal/event"
)

// Cue — короткий звуковой сигнал на игровое событие.
type Cue int

const (
	CueFireBall Cue = iota
	CueWaterBall
	CueEarthBall
	CueFireWall
	CueWaterWall
	CueEarthWall
	CueBounce
	CueWallBreak
	CueDefeat
	CueCounter
	CueHit
	cueCount
)

// tones: базовая частота каждого сигнала, Гц.
var tones = [cueCount]float64{
	CueFireBall:  440,
	CueWaterBall: 330,
	CueEarthBall: 220,
	CueFireWall:  220,
	CueWaterWall: 165,
	CueEarthWall: 110,
	CueBounce:    660,
	CueWallBreak: 150,
	CueDefeat:    880,
	CueCounter:   523,
	CueHit:       196,
}

func ballCue(e element.Element) (Cue, bool) {
	switch e {
	case element.Fire:
		return CueFireBall, true
	case element.Water:
		return CueWaterBall, true
	case element.Earth:
		return CueEarthBall, true
	}
	return 0, false
}

func wallCue(e element.Element) (Cue, bool) {
	switch e {
	case element.Fire:
		return CueFireWall, true
	case element.Water:
		return CueWaterWall, true
	case element.Earth:
		return CueEarthWall, true
	}
	return 0, false
}

// CueFor maps a game event to the cue it plays. Events without a sound return false.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ProjectileSpawned:
		if data, ok := e.Data.(event.ProjectileData); ok {
			return ballCue(data.Element)
		}
	case event.WallSpawned:
		if data, ok := e.Data.(event.WallData); ok {
			return wallCue(data.Element)
		}
	case event.ProjectileBounced:
		return CueBounce, true
	case event.WallBroken:
		return CueWallBreak, true
	case event.TargetDefeated:
		return CueDefeat, true
	case event.CounterAttack:
		return CueCounter, true
	case event.PlayerHit:
		return CueHit, true
	}
	return 0, false
}

// Synthesize renders a decaying sine as 16-bit little-endian stereo PCM, the
// format ebiten's audio players expect.
func Synthesize(freq, duration, volume float64, sampleRate int) []byte {
	n := int(duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(sampleRate)
		envelope := 1 - float64(i)/float64(n)
		v := volume * envelope * math.Sin(2*math.Pi*freq*t)
		sample := uint16(int16(v * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], sample)
		binary.LittleEndian.PutUint16(buf[i*4+2:], sample)
	}
	return buf
}
