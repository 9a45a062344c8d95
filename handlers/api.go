// SPDX-License-Identifier: GPL-3.0-only

package handlers

import "greetme-server/accounts"

// API holds the handlers' collaborators. Constructed once in main and
// passed to route registration; no package-level state.
type API struct {
	Accounts *accounts.Service
}

func NewAPI(accountsService *accounts.Service) *API {
	return &API{Accounts: accountsService}
}
