package ticket

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusSolving  Status = "solving"
	StatusFinished Status = "finished"
	StatusClosed   Status = "closed"
)

var transitions = map[Status][]Status{
	StatusPending:  {StatusSolving},
	StatusSolving:  {StatusSolving, StatusFinished, StatusClosed},
	StatusFinished: {StatusClosed},
	StatusClosed:   {},
}

func ParseStatus(value string) (Status, error) {
	status := Status(cases.Fold().String(strings.TrimSpace(value)))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, value)
	}
	return status, nil
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a ticket in s may move to next.
func (s Status) CanTransition(next Status) bool {
	return lo.Contains(transitions[s], next)
}
