// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// Package logging provides zerolog-based structured logging for the proxy.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:   cfg.Logging.Level,
//	    Format:  cfg.Logging.Format,
//	    Service: "nutriproxy",
//	})
//
//	logging.Info().Str("addr", addr).Msg("Server starting")
//	logging.CtxWarn(ctx).Str("method", method).Msg("Vendor request failed")
//
// # Request Correlation
//
// The HTTP middleware stores the request ID with ContextWithRequestID; Ctx and
// the CtxDebug/CtxInfo/CtxWarn/CtxError shortcuts attach it as "request_id".
//
// # Supervisor Integration
//
// SlogHandler adapts zerolog to slog.Handler so the sutureslog event hook
// writes through the same logger:
//
//	hook := (&sutureslog.Handler{Logger: logging.NewSlogLogger()}).MustHook()
//
// # Redaction
//
// Access tokens and the client secret are never logged. MaskSecret and
// SanitizeValue shorten identifiers such as the client ID for the startup
// banner; SanitizeBody strips credential-bearing vendor error bodies.
//
// Always terminate log chains with .Msg() or .Send():
//
//	logging.Info().Str("key", "value").Msg("message")  // Correct
//	logging.Info().Str("key", "value")                 // WRONG - log not emitted
package logging
