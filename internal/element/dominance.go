// internal/element/dominance.go
package element

// Table maps each element to the single element it beats.
type Table map[Element]Element

// Standard: Fire > Earth > Water > Fire.
var Standard = Table{
	Fire:  Earth,
	Earth: Water,
	Water: Fire,
}

// Beats reports whether a defeats b under the table. None never wins or loses.
func (t Table) Beats(a, b Element) bool {
	if a == None || b == None {
		return false
	}
	loser, ok := t[a]
	return ok && loser == b
}

// Counter returns the element that beats e, or None.
func (t Table) Counter(e Element) Element {
	for winner, loser := range t {
		if loser == e {
			return winner
		}
	}
	return None
}

// Beats uses the standard table.
func Beats(a, b Element) bool {
	return Standard.Beats(a, b)
}

// Counter uses the standard table.
func Counter(e Element) Element {
	return Standard.Counter(e)
}

// ProjectileOutcome is what happens to a projectile after a contact begins.
type ProjectileOutcome int

const (
	// ProjectileBounce keeps the projectile alive with a shortened lifetime.
	ProjectileBounce ProjectileOutcome = iota
	// ProjectileDestroyed — снаряд проиграл и удаляется.
	ProjectileDestroyed
	// ProjectileBreaksWall removes the wall and restores the pre-contact velocity.
	ProjectileBreaksWall
	// ProjectileHitsPlayer removes the projectile and counts a hit.
	ProjectileHitsPlayer
)

func (o ProjectileOutcome) String() string {
	switch o {
	case ProjectileDestroyed:
		return "destroyed"
	case ProjectileBreaksWall:
		return "breaks-wall"
	case ProjectileHitsPlayer:
		return "hits-player"
	default:
		return "bounce"
	}
}

// ResolveProjectile is the single rule set shared by fire, water and earth projectiles.
//
// Walls use inverted polarity: a wall falls only to the element that beats the
// wall's element and never destroys a projectile. Anything unclassified bounces.
func (t Table) ResolveProjectile(self Element, other Tag) ProjectileOutcome {
	switch other.Kind {
	case KindPlayer:
		return ProjectileHitsPlayer
	case KindWall:
		if t.Beats(self, other.Element) {
			return ProjectileBreaksWall
		}
		return ProjectileBounce
	case KindProjectile, KindTarget:
		if t.Beats(other.Element, self) {
			return ProjectileDestroyed
		}
		return ProjectileBounce
	}
	return ProjectileBounce
}

// ResolveProjectile uses the standard table.
func ResolveProjectile(self Element, other Tag) ProjectileOutcome {
	return Standard.ResolveProjectile(self, other)
}

// TargetReaction is what a training target does after a contact begins.
type TargetReaction int

const (
	TargetIgnore TargetReaction = iota
	TargetDefeat
	TargetCounter
)

func (r TargetReaction) String() string {
	switch r {
	case TargetDefeat:
		return "defeat"
	case TargetCounter:
		return "counter"
	default:
		return "ignore"
	}
}

// ResolveTarget: a stronger element defeats the target, a weaker one provokes a
// counterattack, ties and element-less colliders are ignored.
func (t Table) ResolveTarget(self Element, other Tag) TargetReaction {
	if other.Kind == KindPlayer || other.Kind == KindEnvironment || other.Element == None {
		return TargetIgnore
	}
	if t.Beats(other.Element, self) {
		return TargetDefeat
	}
	if t.Beats(self, other.Element) {
		return TargetCounter
	}
	return TargetIgnore
}

// ResolveTarget uses the standard table.
func ResolveTarget(self Element, other Tag) TargetReaction {
	return Standard.ResolveTarget(self, other)
}
