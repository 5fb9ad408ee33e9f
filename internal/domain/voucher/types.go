package voucher

type Status string

const (
	StatusActive   Status = "ACTIVE"
	StatusRedeemed Status = "REDEEMED"
	StatusExpired  Status = "EXPIRED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRedeemed, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRedeemed || s == StatusExpired
}

// ACTIVE is the creation state and is never a transition target.
var transitions = map[Status][]Status{
	StatusActive: {StatusRedeemed, StatusExpired},
}

func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
