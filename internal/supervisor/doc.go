// Comunidades - Interactive Map of Spain's Autonomous Communities
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/comunidades

/*
Package supervisor runs the long-lived services of the map server under
suture v4.

	RootSupervisor ("comunidades")
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashed service is restarted with backoff. Cancelling the context passed
to Serve stops every service within TreeConfig.ShutdownTimeout; anything
still running afterwards is listed by UnstoppedServiceReport.

Supervisor events go to a *slog.Logger through sutureslog. The server
passes logging.NewSlogLogger() so they land in the zerolog stream.

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	return tree.Serve(ctx)
*/
package supervisor
