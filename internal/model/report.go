package model

import "time"

// StatusReport is the result of the `status` query: connectivity plus
// member counts, all derived from one snapshot.
type StatusReport struct {
	Connection   ConnectionStatus
	MembersTotal int
	MembersUp    int
	MembersDown  int
}

// DownMember identifies a member currently in StateDown, for the summary's
// down list.
type DownMember struct {
	Pool    string
	Member  string
	Address string
}

// HealthSummary is the result of the `summary` query.
type HealthSummary struct {
	HealthPercent   float64 // up/total*100; 0 when there are no members
	MembersUp       int
	MembersTotal    int
	Down            []DownMember
	VirtualsEnabled int
	VirtualsTotal   int
	LastChecked     time.Time
}
