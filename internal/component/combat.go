package component

// Cooldown — ворота перезарядки одной способности.
type Cooldown struct {
	Duration    float64 // Фиксированная длительность перезарядки, сек
	NextAllowed float64 // Игровое время, начиная с которого разрешён следующий вызов
}

// NewCooldown returns a slot that is ready immediately.
func NewCooldown(duration float64) *Cooldown {
	return &Cooldown{Duration: duration}
}

// TryActivate admits a request at now and arms the next window.
// A rejected request leaves the slot untouched.
func (c *Cooldown) TryActivate(now float64) bool {
	if now < c.NextAllowed {
		return false
	}
	c.NextAllowed = now + c.Duration
	return true
}

// Ready reports whether TryActivate would succeed at now.
func (c *Cooldown) Ready(now float64) bool {
	return now >= c.NextAllowed
}

// Ability names one cooldown slot of a caster.
type Ability int

const (
	AbilityFireBall Ability = iota
	AbilityWaterBall
	AbilityEarthBall
	AbilityFireWall
	AbilityWaterWall
	AbilityEarthWall
	AbilityDash
)

func (a Ability) String() string {
	switch a {
	case AbilityFireBall:
		return "FireBall"
	case AbilityWaterBall:
		return "WaterBall"
	case AbilityEarthBall:
		return "EarthBall"
	case AbilityFireWall:
		return "FireWall"
	case AbilityWaterWall:
		return "WaterWall"
	case AbilityEarthWall:
		return "EarthWall"
	case AbilityDash:
		return "Dash"
	default:
		return "Unknown"
	}
}

// Caster — сущность, способная атаковать и ставить стены (игрок или манекен).
// Отсутствующий слот означает, что способность кастеру недоступна.
type Caster struct {
	Slots map[Ability]*Cooldown
}

// Slot returns the cooldown slot for an ability, or nil if the caster lacks it.
func (c *Caster) Slot(a Ability) *Cooldown {
	if c.Slots == nil {
		return nil
	}
	return c.Slots[a]
}
