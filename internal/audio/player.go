// internal/audio/player.go
package audio

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"elemental-arena/internal/config"
	"elemental-arena/internal/event"
)

// CuePlayer слушает игровые события и проигрывает короткие сигналы.
// Ошибки звука не влияют на игру: они только пишутся в лог.
type CuePlayer struct {
	players map[Cue]*audio.Player
	muted   bool
}

// NewCuePlayer synthesises every cue once and keeps one player per cue.
func NewCuePlayer(ctx *audio.Context, muted bool) *CuePlayer {
	p := &CuePlayer{
		players: make(map[Cue]*audio.Player, cueCount),
		muted:   muted,
	}
	for cue := Cue(0); cue < cueCount; cue++ {
		pcm := Synthesize(tones[cue], config.CueDuration, config.CueVolume, ctx.SampleRate())
		p.players[cue] = ctx.NewPlayerFromBytes(pcm)
	}
	log.Printf("CuePlayer: %d cues ready, muted=%v", len(p.players), muted)
	return p
}

// Subscribe registers the player for every event that has a cue.
func (p *CuePlayer) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(p, event.ProjectileSpawned, event.ProjectileBounced, event.WallSpawned,
		event.WallBroken, event.TargetDefeated, event.CounterAttack, event.PlayerHit)
}

func (p *CuePlayer) SetMuted(muted bool) { p.muted = muted }

func (p *CuePlayer) Muted() bool { return p.muted }

// OnEvent plays the event's cue. A cue that is still playing is not restarted.
func (p *CuePlayer) OnEvent(e event.Event) {
	if p.muted {
		return
	}
	cue, ok := CueFor(e)
	if !ok {
		return
	}
	player, ok := p.players[cue]
	if !ok || player.IsPlaying() {
		return
	}
	if err := player.Rewind(); err != nil {
		log.Printf("CuePlayer: warning: rewind cue %d: %v", cue, err)
		return
	}
	player.Play()
}
