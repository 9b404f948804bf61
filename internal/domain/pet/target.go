package pet

import "fmt"

type TargetKind string

const (
	TargetDiet     TargetKind = "diet"
	TargetActivity TargetKind = "activity"
)

// ScheduleTarget names the diet or activity a schedule belongs to. It is
// stored as the nullable dietid/activityid column pair.
type ScheduleTarget struct {
	Kind TargetKind `json:"kind"`
	ID   int64      `json:"id"`
}

func DietTarget(dietID int64) ScheduleTarget {
	return ScheduleTarget{Kind: TargetDiet, ID: dietID}
}

func ActivityTarget(activityID int64) ScheduleTarget {
	return ScheduleTarget{Kind: TargetActivity, ID: activityID}
}

func (t ScheduleTarget) Valid() bool {
	return (t.Kind == TargetDiet || t.Kind == TargetActivity) && t.ID > 0
}

// Columns splits the target into its dietid and activityid values.
func (t ScheduleTarget) Columns() (dietID, activityID *int64, err error) {
	id := t.ID
	switch {
	case !t.Valid():
		return nil, nil, fmt.Errorf("%w: %q #%d", ErrInvalidTarget, t.Kind, t.ID)
	case t.Kind == TargetDiet:
		return &id, nil, nil
	default:
		return nil, &id, nil
	}
}

// TargetFromColumns rebuilds a target from a stored row. Exactly one of the
// two columns must be set.
func TargetFromColumns(dietID, activityID *int64) (ScheduleTarget, error) {
	switch {
	case dietID != nil && activityID == nil:
		return DietTarget(*dietID), nil
	case dietID == nil && activityID != nil:
		return ActivityTarget(*activityID), nil
	default:
		return ScheduleTarget{}, ErrInvalidTarget
	}
}
