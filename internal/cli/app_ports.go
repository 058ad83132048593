package cli

import "github.com/alexanderramin/cardboard/internal/app"

func (a *App) generateTicketUseCase() app.GenerateTicketUseCase {
	if a.GenerateTicket != nil {
		return a.GenerateTicket
	}
	return a.Tickets
}

func (a *App) dashboardUseCase() app.DashboardUseCase {
	if a.ViewDashboard != nil {
		return a.ViewDashboard
	}
	return a.Dashboard
}
