package enum

import "encoding/json"

// OutcomeStatus tags the result of a single settlement attempt.
// Exactly one status is produced per attempt.
type OutcomeStatus int

const (
	OutcomeSettled           OutcomeStatus = 0
	OutcomeInsufficientFunds OutcomeStatus = 1
)

func (s OutcomeStatus) String() string {
	return [...]string{"Settled", "InsufficientFunds"}[s]
}

func (s OutcomeStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *OutcomeStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = OutcomeStatus(i)
		return nil
	}
	switch str {
	case "Settled":
		*s = OutcomeSettled
	case "InsufficientFunds":
		*s = OutcomeInsufficientFunds
	}
	return nil
}
