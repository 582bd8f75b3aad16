package dodger

// Collides reports whether an obstacle overlaps the player.
// The circle center is clamped into the player's box to find the nearest
// point; touching exactly at the radius is not a hit.
func Collides(o Obstacle, p Player) bool {
	cx, cy := p.Box().ClosestPoint(o.X, o.Y)
	dx := o.X - cx
	dy := o.Y - cy
	return dx*dx+dy*dy < o.Radius*o.Radius
}
