// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package entity

import "github.com/taibuivan/panelkit/internal/platform/apperr"

// ConfigurationError reports a wiring mistake found while configuring a
// widget tree: an unknown entity type, an unresolvable relationship or a
// widget class that is not registered. It is never retried.
type ConfigurationError struct {
	Message string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Err != nil {
		return "configuration: " + e.Message + ": " + e.Err.Error()
	}
	return "configuration: " + e.Message
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// AppError implements [apperr.Coder].
func (e *ConfigurationError) AppError() *apperr.AppError {
	return apperr.Configuration(e.Message, e.Err)
}
