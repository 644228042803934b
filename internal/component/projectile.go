package component

import "time"

// BulletColor is the visual class of a projectile. The host picks the palette.
type BulletColor uint8

const (
	BulletEmber BulletColor = iota
	BulletFlame
	BulletSpark
	BulletSmoke
)

func (c BulletColor) String() string {
	switch c {
	case BulletEmber:
		return "ember"
	case BulletFlame:
		return "flame"
	case BulletSpark:
		return "spark"
	case BulletSmoke:
		return "smoke"
	}
	return "unknown"
}

// Bullet is a short-lived projectile. TTL counts down to zero, then the
// entity is destroyed.
type Bullet struct {
	TTL    time.Duration
	Radius float64
	Color  BulletColor
}
