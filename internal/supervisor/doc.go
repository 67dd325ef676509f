// Wishrank - Wishlist-driven Jewelry Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wishrank

/*
Package supervisor provides process supervision for Wishrank using suture v4.

The tree separates background maintenance from request serving:

	RootSupervisor ("wishrank")
	├── DataSupervisor ("data-layer")
	│   └── StoreService (value log GC, gauges)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A crashing maintenance loop is restarted by the data layer without
interrupting the HTTP server, and vice versa.

# Usage

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewStoreService(st, services.StoreServiceConfig{Interval: cfg.Store.GCInterval}, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout, logger))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

# Logging

Supervisor events (service start, failure, backoff, restart) are logged
through sutureslog, bridged to the application's zerolog output by
logging.NewSlogLogger.

# Configuration

TreeConfig mirrors suture.Spec: FailureThreshold, FailureDecay,
FailureBackoff and ShutdownTimeout. Zero values take suture's defaults.
*/
package supervisor
