package loyalty

// DefaultMilestoneEvery is the visit interval that triggers a milestone reward.
const DefaultMilestoneEvery = 6

// IsMilestone reports whether visits is a positive exact multiple of every.
func IsMilestone(visits, every int) bool {
	if visits <= 0 || every <= 0 {
		return false
	}
	return visits%every == 0
}

// NextMilestone returns the next visit count at which a milestone is reached.
func NextMilestone(visits, every int) int {
	if every <= 0 {
		return 0
	}
	if visits < 0 {
		visits = 0
	}
	return (visits/every + 1) * every
}
