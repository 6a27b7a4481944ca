package service

import "errors"

var (
	ErrVersionIsNotSpecified       = errors.New("app version is not specified")
	ErrExtensionNameIsNotSpecified = errors.New("extension name is not specified")
	ErrUnknownLoadMode             = errors.New("unknown configuration load mode")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenIsExpired     = errors.New("token is expired")
)
