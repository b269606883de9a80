package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrMaxSelections = errors.New("maximum selections reached")
	ErrUnknownOption = errors.New("unknown addon option")
	ErrUnknownGroup  = errors.New("unknown addon group")
)

// SelectionError names the addon group whose requirement is not met.
type SelectionError struct {
	GroupID   string
	GroupName string
	Min       int
	Selected  int
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("addon group %q requires at least %d selection(s), got %d", e.GroupName, e.Min, e.Selected)
}
