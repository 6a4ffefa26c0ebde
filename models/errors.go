package models

import "fmt"

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return e.Message
}

type ErrorNotFound struct {
	Message string
}

func (e ErrorNotFound) Error() string {
	return e.Message
}

type ErrorInvalidTransition struct {
	From   StoryStatus
	Action string
}

func (e ErrorInvalidTransition) Error() string {
	return fmt.Sprintf("cannot %s a story with status %q", e.Action, e.From)
}

type ErrorUnauthorized struct {
	Message string
}

func (e ErrorUnauthorized) Error() string {
	if e.Message == "" {
		return "Unauthorized"
	}
	return e.Message
}

type ErrorInternalServer struct {
	Message string
	Err     error
}

func (e ErrorInternalServer) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e ErrorInternalServer) Unwrap() error {
	return e.Err
}
