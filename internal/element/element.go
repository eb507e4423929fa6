// internal/element/element.go
package element

import (
	"errors"
	"fmt"
	"strings"
)

// Element — стихия сущности. Назначается при создании и больше не меняется.
type Element int

const (
	None Element = iota
	Fire
	Water
	Earth
)

// All lists the three fighting elements in dominance order.
var All = []Element{Fire, Earth, Water}

// ErrUnknownElement is returned by Parse for names outside {none, fire, water, earth}.
var ErrUnknownElement = errors.New("unknown element")

func (e Element) String() string {
	switch e {
	case Fire:
		return "Fire"
	case Water:
		return "Water"
	case Earth:
		return "Earth"
	default:
		return "None"
	}
}

// Parse converts a definition-file name into an Element. Case is ignored.
func Parse(name string) (Element, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return None, nil
	case "fire":
		return Fire, nil
	case "water":
		return Water, nil
	case "earth":
		return Earth, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownElement, name)
}

// MarshalText / UnmarshalText let elements appear as names in JSON.
func (e Element) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(e.String())), nil
}

func (e *Element) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Kind — категория сущности для обработки столкновений.
type Kind int

const (
	KindEnvironment Kind = iota
	KindProjectile
	KindWall
	KindPlayer
	KindTarget
)

func (k Kind) String() string {
	switch k {
	case KindProjectile:
		return "Projectile"
	case KindWall:
		return "Wall"
	case KindPlayer:
		return "Player"
	case KindTarget:
		return "Target"
	default:
		return "Environment"
	}
}

// Tag is what a collision callback learns about the other collider.
// Player and Environment tags never carry an element.
type Tag struct {
	Kind    Kind
	Element Element
}

// NewTag builds a tag, dropping the element for kinds that cannot have one.
func NewTag(kind Kind, e Element) Tag {
	if kind == KindPlayer || kind == KindEnvironment {
		e = None
	}
	return Tag{Kind: kind, Element: e}
}

func (t Tag) String() string {
	if t.Element == None {
		return t.Kind.String()
	}
	return t.Element.String() + t.Kind.String()
}
