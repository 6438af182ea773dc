package ucr

import (
	"fmt"
	"strings"
)

// Action is the database operation a single form field is tagged with.
type Action int

const (
	ActionNone   Action = iota // field loaded unchanged from storage.
	ActionCreate               // field belongs to a row that should be created.
	ActionUpdate               // field was edited on an existing row.
	ActionRemove               // field belongs to a row that should be removed.
	ActionID                   // field holds the row primary key.
)

var actionNames = [...]string{
	ActionNone:   "",
	ActionCreate: "CREATE",
	ActionUpdate: "UPDATE",
	ActionRemove: "REMOVE",
	ActionID:     "ID",
}

// String returns the wire name of the action. ActionNone is the empty string.
func (a Action) String() string {
	if !a.IsValid() {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// IsValid returns whether a is one of the known actions.
func (a Action) IsValid() bool {
	return a >= ActionNone && a <= ActionID
}

// ParseAction parses an action wire name, ignoring case. Both "" and "NONE" parse as ActionNone.
func ParseAction(s string) (Action, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return ActionNone, nil
	case "CREATE":
		return ActionCreate, nil
	case "UPDATE":
		return ActionUpdate, nil
	case "REMOVE":
		return ActionRemove, nil
	case "ID":
		return ActionID, nil
	default:
		return ActionNone, fmt.Errorf("%w: '%s'", ErrInvalidAction, s)
	}
}

// Disposition is the action resolved for an entire object.
type Disposition int

const (
	DispositionNone Disposition = iota
	DispositionCreate
	DispositionUpdate
	DispositionRemove
)

func (d Disposition) String() string {
	switch d {
	case DispositionNone:
		return "NONE"
	case DispositionCreate:
		return "CREATE"
	case DispositionUpdate:
		return "UPDATE"
	case DispositionRemove:
		return "REMOVE"
	default:
		return fmt.Sprintf("Disposition(%d)", int(d))
	}
}

// requiresID returns whether objects with this disposition must carry an ID field.
func (d Disposition) requiresID() bool {
	return d == DispositionUpdate || d == DispositionRemove
}
