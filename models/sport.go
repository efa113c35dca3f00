package models

type Sport string

const (
	Football    Sport = "football"
	TableTennis Sport = "tabletennis"
)

// Sports lists every sport the tracker knows about, in display order.
var Sports = []Sport{Football, TableTennis}

func (s Sport) Valid() bool {
	return s == Football || s == TableTennis
}

// ParseSport returns ErrUnknownSport for anything outside Sports.
func ParseSport(raw string) (Sport, error) {
	s := Sport(raw)
	if !s.Valid() {
		return "", ErrUnknownSport
	}
	return s, nil
}

type MatchStatus string

const (
	StatusUpcoming  MatchStatus = "upcoming"
	StatusLive      MatchStatus = "live"
	StatusCompleted MatchStatus = "completed"
)

func (s MatchStatus) Valid() bool {
	return s == StatusUpcoming || s == StatusLive || s == StatusCompleted
}
