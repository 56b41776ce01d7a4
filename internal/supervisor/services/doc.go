// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package services adapts long-running components to suture.Service.

HTTPServerService turns the blocking ListenAndServe of an *http.Server
into suture's context-aware Serve. Cancelling the context triggers
Shutdown with a bounded timeout so in-flight description lookups can
finish:

	server := &http.Server{Addr: cfg.Server.Addr(), Handler: router.SetupChi()}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
*/
package services
