// Package memory provides an in-memory Repository implementation for
// tests and local development. All entities are copied on write and read
// so callers can never mutate stored state through shared pointers.
package memory

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/regmon-lab/regmon/pkg/domain/interfaces"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = goerr.New("not found")

// Memory is an in-memory implementation of interfaces.Repository
type Memory struct {
	risk      *riskRepository
	complaint *complaintRepository
}

var _ interfaces.Repository = &Memory{}

// New creates an empty in-memory repository
func New() *Memory {
	return &Memory{
		risk:      newRiskRepository(),
		complaint: newComplaintRepository(),
	}
}

func (m *Memory) Risk() interfaces.RiskRepository {
	return m.risk
}

func (m *Memory) Complaint() interfaces.ComplaintRepository {
	return m.complaint
}

func (m *Memory) Close() error {
	return nil
}
