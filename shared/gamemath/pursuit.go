package gamemath

// AttackEnvelopeSquared returns (threshold + agentRadius + targetRadius)².
func AttackEnvelopeSquared(threshold, agentRadius, targetRadius float64) float64 {
	r := threshold + agentRadius + targetRadius
	return r * r
}

// LungeCurve maps lunge progress to interpolation weight: 0 at p=0, 1 at p=0.5,
// back to 0 at p=1.
func LungeCurve(p float64) float64 {
	return (-p*p + p) * 4
}

// LungeDestination is the target position pulled back toward origin by
// agentRadius, so the lunge stops at contact distance.
func LungeDestination(origin, target Vec2, agentRadius float64) Vec2 {
	dir := target.Sub(origin).Normalized()
	return target.Sub(dir.Scale(agentRadius))
}

// StandoffPoint is the point standoff units short of target along the line
// from self.
func StandoffPoint(self, target Vec2, standoff float64) Vec2 {
	dir := target.Sub(self).Normalized()
	return target.Sub(dir.Scale(standoff))
}
