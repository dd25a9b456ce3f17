package monitor

import "time"

type Status struct {
	Backing   bool      `json:"backing"`
	Lists     int       `json:"lists"`
	Products  int       `json:"products"`
	LastCheck time.Time `json:"last_check"`
}
