package commands

import (
	"superviseme/domain/core/valueobjects"
	apperrors "superviseme/pkg/errors"
)

// ExpandNodeCommand materializes the children of a collapsed cluster or
// subcategory node in one session's graph
type ExpandNodeCommand struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
}

// Validate validates the command
func (c ExpandNodeCommand) Validate() error {
	return validateSessionNode(c.SessionID, c.NodeID)
}

// CollapseNodeCommand removes the subtree under an expanded node
type CollapseNodeCommand struct {
	SessionID string `json:"session_id"`
	NodeID    string `json:"node_id"`
}

// Validate validates the command
func (c CollapseNodeCommand) Validate() error {
	return validateSessionNode(c.SessionID, c.NodeID)
}

// ExpandAllCommand expands every cluster, then every subcategory
type ExpandAllCommand struct {
	SessionID string `json:"session_id"`
}

// Validate validates the command
func (c ExpandAllCommand) Validate() error {
	return validateSessionID(c.SessionID)
}

// CollapseAllCommand resets a session's graph to its initial state
type CollapseAllCommand struct {
	SessionID string `json:"session_id"`
}

// Validate validates the command
func (c CollapseAllCommand) Validate() error {
	return validateSessionID(c.SessionID)
}

// EndSessionCommand discards a session and its graph
type EndSessionCommand struct {
	SessionID string `json:"session_id"`
}

// Validate validates the command
func (c EndSessionCommand) Validate() error {
	return validateSessionID(c.SessionID)
}

func validateSessionID(sessionID string) error {
	if sessionID == "" {
		return apperrors.NewValidationError("sessionID is required")
	}
	return nil
}

func validateSessionNode(sessionID, nodeID string) error {
	if err := validateSessionID(sessionID); err != nil {
		return err
	}
	if _, err := valueobjects.NewNodeIDFromString(nodeID); err != nil {
		return apperrors.NewValidationError(err.Error())
	}
	return nil
}
