package sweep

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// UserResult is the outcome of one user within a sweep. Awarded lists only
// badges created by this sweep.
type UserResult struct {
	UserID  string   `json:"userId"`
	Awarded []string `json:"awarded"`
	Err     error    `json:"-"`
}

func (r UserResult) MarshalJSON() ([]byte, error) {
	out := struct {
		UserID  string   `json:"userId"`
		Awarded []string `json:"awarded"`
		Error   string   `json:"error,omitempty"`
	}{UserID: r.UserID, Awarded: r.Awarded}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	return json.Marshal(out)
}

type Report struct {
	RunID     uuid.UUID     `json:"runId"`
	Results   []UserResult  `json:"results"`
	Succeeded int           `json:"succeeded"`
	Failed    int           `json:"failed"`
	Duration  time.Duration `json:"duration"`
}

// Awarded returns the number of badges created across all users.
func (r *Report) Awarded() int {
	n := 0
	for _, res := range r.Results {
		n += len(res.Awarded)
	}
	return n
}
