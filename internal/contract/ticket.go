package contract

import "github.com/alexanderramin/cardboard/internal/app"

type GenerationState = app.GenerationState

const (
	GenerationIdle       GenerationState = app.GenerationIdle
	GenerationInProgress GenerationState = app.GenerationInProgress
	GenerationSucceeded  GenerationState = app.GenerationSucceeded
	GenerationFailed     GenerationState = app.GenerationFailed
)

type GenerateRequest = app.GenerateRequest

type GenerateResult = app.GenerateResult

type TicketPreview = app.TicketPreview
