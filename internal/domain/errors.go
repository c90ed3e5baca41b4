package domain

import "fmt"

// ConfigError means the run cannot start, e.g. the problem sense is unknown.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// ParseError reports a log line that could not be turned into a record.
type ParseError struct {
	Line   int
	Token  string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("line %d: %s (token %q)", e.Line, e.Reason, e.Token)
}

// DuplicateNodeError is returned when a node id is created twice.
type DuplicateNodeError struct {
	ID int
}

func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("node %d already exists", e.ID)
}

// MissingParentError is returned when a node names a parent that was never created.
type MissingParentError struct {
	ID       int
	ParentID int
}

func (e *MissingParentError) Error() string {
	return fmt.Sprintf("node %d: parent %d does not exist", e.ID, e.ParentID)
}

// RootError is returned when a node other than the root is created without
// a parent, or the root is given one.
type RootError struct {
	ID       int
	ParentID int
}

func (e *RootError) Error() string {
	if e.ParentID == 0 {
		return fmt.Sprintf("node %d has no parent but is not the root", e.ID)
	}
	return fmt.Sprintf("root node %d cannot have parent %d", e.ID, e.ParentID)
}

// UnknownNodeError is returned for references to node ids never created.
type UnknownNodeError struct {
	ID int
}

func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("node %d does not exist", e.ID)
}
