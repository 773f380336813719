// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

/*
Package services provides the suture.Service wrappers run by the
supervisor tree.

  - HTTPServerService: ListenAndServe with graceful Shutdown on cancellation
  - CacheJanitorService: periodic sweep of expired cache entries

Each service returns ctx.Err() when its context is canceled and any other
error to request a restart.
*/
package services
