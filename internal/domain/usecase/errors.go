package usecase

import "errors"

var ErrTeamNotFound = errors.New("team not found")
