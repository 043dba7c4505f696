package enum

import "encoding/json"

// SettlementStatus is the terminal state of a settlement call.
// Rejected settlements persist nothing; committed settlements are
// irrevocable even when stock warnings follow.
type SettlementStatus int

const (
	SettlementRejected              SettlementStatus = 0
	SettlementCommitted             SettlementStatus = 1
	SettlementCommittedWithWarnings SettlementStatus = 2
)

func (s SettlementStatus) String() string {
	return [...]string{"Rejected", "Committed", "CommittedWithWarnings"}[s]
}

func (s SettlementStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}
