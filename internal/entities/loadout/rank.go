package loadout

// Rank is an ordinal progression tier gating access to items. RankInvalid
// means "no requirement" and always passes eligibility checks.
type Rank int

// Rank tiers, lowest to highest
const (
	RankInvalid Rank = iota - 1
	RankRenegade
	RankPrivate
	RankCorporal
	RankSergeant
	RankLieutenant
	RankCaptain
	RankMajor
	RankColonel
	RankGeneral
)

var rankNames = map[Rank]string{
	RankRenegade:   "RENEGADE",
	RankPrivate:    "PRIVATE",
	RankCorporal:   "CORPORAL",
	RankSergeant:   "SERGEANT",
	RankLieutenant: "LIEUTENANT",
	RankCaptain:    "CAPTAIN",
	RankMajor:      "MAJOR",
	RankColonel:    "COLONEL",
	RankGeneral:    "GENERAL",
}

var ranksByName = func() map[string]Rank {
	m := make(map[string]Rank, len(rankNames))
	for r, name := range rankNames {
		m[name] = r
	}
	return m
}()

// String returns the rank's enum name, empty for RankInvalid
func (r Rank) String() string {
	return rankNames[r]
}

// Valid reports whether the rank names a real tier
func (r Rank) Valid() bool {
	_, ok := rankNames[r]
	return ok
}

// Meets reports whether a player holding rank r may use an item requiring
// required. An invalid requirement never gates.
func (r Rank) Meets(required Rank) bool {
	if !required.Valid() {
		return true
	}
	return r.Valid() && r >= required
}

// ParseRank resolves a persisted rank name. Unknown or empty names resolve
// to RankInvalid so old records missing the field load as "no requirement".
func ParseRank(name string) Rank {
	if r, ok := ranksByName[name]; ok {
		return r
	}
	return RankInvalid
}

// MaxRank returns the higher of two ranks, treating invalid as lowest
func MaxRank(a, b Rank) Rank {
	if !a.Valid() {
		return b
	}
	if !b.Valid() {
		return a
	}
	if a > b {
		return a
	}
	return b
}
