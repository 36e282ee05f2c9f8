package service

import "errors"

var (
	ErrLoadSources  = errors.New("error loading property sources")
	ErrBindSettings = errors.New("error binding settings")
)
