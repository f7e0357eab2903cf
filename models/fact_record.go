package models

import (
	"github.com/hashicorp/go-set/v2"
)

// FactRecord is the typed, normalized view of a lead's intake answers. It is
// derived and ephemeral: recomputed on every evaluation, never persisted.
//
// Invariant: counts and amounts are never negative, missing answers come out as
// zero values, so arithmetic over a FactRecord never has to deal with nulls.
type FactRecord struct {
	// Region codes the subject operates in, normalized to upper case.
	Regions          *set.Set[string]
	AnnualRevenue    float64
	EmployeeCount    int
	YearsInOperation int
	// Industry is the primary industry code; empty means unknown.
	Industry string

	// Loss history over the rule's lookback window.
	HasLosses     bool
	LossCount     int
	TotalIncurred float64

	UsesSubcontractors    bool
	CollectsCertificates  bool
	OperationsDescription string

	// Derived flags.
	MultiRegion      bool
	SubsWithoutCerts bool
}
