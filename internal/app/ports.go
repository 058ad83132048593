package app

import "context"

type GenerateTicketUseCase interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)
}

type DashboardUseCase interface {
	Summary(ctx context.Context, req DashboardRequest) (*DashboardResponse, error)
}
