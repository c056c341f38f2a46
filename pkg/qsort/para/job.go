package para

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Job identifies one top-level parallel sort run, so errors surfacing from
// concurrent workers can be attributed to the call that spawned them.
type Job struct {
	id        uuid.UUID
	createdAt time.Time
}

func NewJob() Job {
	return Job{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
	}
}

func (j Job) Id() uuid.UUID {
	return j.id
}

func (j Job) CreatedAt() time.Time {
	return j.createdAt
}

// Wrap tags err with the job identity. A nil err stays nil.
func (j Job) Wrap(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("parallel sort %s: %w", j.id, err)
}
