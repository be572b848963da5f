package raiderio

// Profile is the subset of the raider.io character profile this bot reads.
type Profile struct {
	Name                 string `json:"name"`
	Realm                string `json:"realm"`
	MythicPlusRecentRuns []Run  `json:"mythic_plus_recent_runs"`
}

// HasRecentRuns reports whether the profile carried the recent-runs field at
// all. raider.io omits it when it has no data for the character; an empty
// array is a valid "no runs yet" answer and decodes to a non-nil slice.
func (p *Profile) HasRecentRuns() bool {
	return p.MythicPlusRecentRuns != nil
}

// Run is one completed mythic+ dungeon run.
type Run struct {
	Dungeon     string `json:"dungeon"`
	MythicLevel int    `json:"mythic_level"`
	CompletedAt string `json:"completed_at"`
}
