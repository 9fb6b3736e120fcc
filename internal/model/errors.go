package model

import "errors"

// Common errors used across the application. Join failures surface to
// the requesting connection; unauthorized or mistimed gameplay actions
// are silently ignored rather than erroring.
var (
	ErrRoomNotFound      = errors.New("room not found")
	ErrRoomNotJoinable   = errors.New("game already in progress")
	ErrRoomFull          = errors.New("room is full")
	ErrEmptyLocationPool = errors.New("location pool is empty")
)
