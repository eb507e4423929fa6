package element

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeats_Irreflexive(t *testing.T) {
	for _, e := range append([]Element{None}, All...) {
		assert.False(t, Beats(e, e), "%s must not beat itself", e)
	}
}

func TestBeats_SingleThreeCycle(t *testing.T) {
	assert.True(t, Beats(Fire, Earth))
	assert.True(t, Beats(Earth, Water))
	assert.True(t, Beats(Water, Fire))

	// Каждая стихия побеждает ровно одну и проигрывает ровно одной.
	for _, a := range All {
		wins, losses := 0, 0
		for _, b := range All {
			if Beats(a, b) {
				wins++
				assert.False(t, Beats(b, a), "%s/%s must not be symmetric", a, b)
			}
			if Beats(b, a) {
				losses++
			}
		}
		assert.Equal(t, 1, wins, a.String())
		assert.Equal(t, 1, losses, a.String())
	}

	// Following the cycle from Fire returns to Fire after three steps.
	e := Fire
	for i := 0; i < 3; i++ {
		e = Standard[e]
	}
	assert.Equal(t, Fire, e)
}

func TestBeats_NoneIsNeutral(t *testing.T) {
	for _, e := range All {
		assert.False(t, Beats(None, e))
		assert.False(t, Beats(e, None))
	}
	assert.Equal(t, None, Counter(None))
}

func TestCounter(t *testing.T) {
	assert.Equal(t, Water, Counter(Fire))
	assert.Equal(t, Fire, Counter(Earth))
	assert.Equal(t, Earth, Counter(Water))
}

func TestResolveProjectile_ConsistentAcrossElements(t *testing.T) {
	for _, self := range All {
		weaker := Standard[self]
		stronger := Counter(self)

		assert.Equal(t, ProjectileBounce, ResolveProjectile(self, NewTag(KindProjectile, weaker)), self.String())
		assert.Equal(t, ProjectileDestroyed, ResolveProjectile(self, NewTag(KindProjectile, stronger)), self.String())
		assert.Equal(t, ProjectileBounce, ResolveProjectile(self, NewTag(KindProjectile, self)), self.String())

		assert.Equal(t, ProjectileBreaksWall, ResolveProjectile(self, NewTag(KindWall, weaker)), self.String())
		assert.Equal(t, ProjectileBounce, ResolveProjectile(self, NewTag(KindWall, stronger)), self.String())
		assert.Equal(t, ProjectileBounce, ResolveProjectile(self, NewTag(KindWall, self)), self.String())

		assert.Equal(t, ProjectileDestroyed, ResolveProjectile(self, NewTag(KindTarget, stronger)), self.String())
		assert.Equal(t, ProjectileHitsPlayer, ResolveProjectile(self, NewTag(KindPlayer, None)), self.String())
		assert.Equal(t, ProjectileBounce, ResolveProjectile(self, NewTag(KindEnvironment, None)), self.String())
	}
}

func TestResolveTarget(t *testing.T) {
	assert.Equal(t, TargetDefeat, ResolveTarget(Water, NewTag(KindProjectile, Earth)))
	assert.Equal(t, TargetCounter, ResolveTarget(Water, NewTag(KindProjectile, Fire)))
	assert.Equal(t, TargetCounter, ResolveTarget(Fire, NewTag(KindProjectile, Earth)))
	assert.Equal(t, TargetDefeat, ResolveTarget(Fire, NewTag(KindProjectile, Water)))
	assert.Equal(t, TargetIgnore, ResolveTarget(Fire, NewTag(KindProjectile, Fire)))
	assert.Equal(t, TargetIgnore, ResolveTarget(Fire, NewTag(KindEnvironment, None)))
	assert.Equal(t, TargetIgnore, ResolveTarget(Earth, NewTag(KindPlayer, Fire)))
	assert.Equal(t, TargetIgnore, ResolveTarget(None, NewTag(KindProjectile, Fire)))
}

func TestNewTag_DropsElementForPlayerAndEnvironment(t *testing.T) {
	assert.Equal(t, None, NewTag(KindPlayer, Fire).Element)
	assert.Equal(t, None, NewTag(KindEnvironment, Water).Element)
	assert.Equal(t, Earth, NewTag(KindWall, Earth).Element)
	assert.Equal(t, "FireProjectile", NewTag(KindProjectile, Fire).String())
	assert.Equal(t, "Player", NewTag(KindPlayer, None).String())
}

func TestParseAndJSON(t *testing.T) {
	e, err := Parse(" WATER ")
	require.NoError(t, err)
	assert.Equal(t, Water, e)

	_, err = Parse("lightning")
	assert.ErrorIs(t, err, ErrUnknownElement)

	var decoded struct {
		Element Element `json:"element"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"element":"earth"}`), &decoded))
	assert.Equal(t, Earth, decoded.Element)

	out, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, `{"element":"earth"}`, string(out))
}
