package postgres

// Table names. Only these may reach the identity generator.
const (
	tableCandidate      = "candidate"
	tableSkill          = "skill"
	tableCandidateSkill = "candidate_skill"
)

// Column lists in the order the row decoders scan them.
const (
	candidateColumns = `id, first_name, surname, date_of_birth, address, town, country,
		post_code, phone_home, phone_mobile, phone_work, created_date, updated_date`

	skillColumns = `id, name, created_date, updated_date`

	candidateSkillJoinColumns = `cs.id, cs.candidate_id, cs.skill_id, s.name AS skill_name,
		cs.created_date, cs.updated_date`
)

var knownTables = map[string]struct{}{
	tableCandidate:      {},
	tableSkill:          {},
	tableCandidateSkill: {},
}
