package rental

type Status string

const (
	// StatusActive is the only entry state; StatusFinished is terminal.
	// The legacy data model named a third "cancelado" state with no reachable
	// transition, so it is not part of the enum.
	StatusActive   Status = "active"
	StatusFinished Status = "finished"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusFinished:
		return true
	default:
		return false
	}
}
