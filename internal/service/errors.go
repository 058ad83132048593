package service

import "errors"

// ErrGenerationInFlight is returned when a ticket is requested for a card
// whose previous request has not finished. The request is dropped.
var ErrGenerationInFlight = errors.New("ticket generation already in progress")
