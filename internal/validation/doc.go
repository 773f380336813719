// Nutriproxy - Nutrition Data Proxy
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/nutriproxy

// Package validation validates API request parameters with
// go-playground/validator v10.
//
// Handlers fill a request struct from the URL and call ValidateStruct:
//
//	req := validation.SearchRequest{Query: r.URL.Query().Get("query")}
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    writeError(w, r, http.StatusBadRequest, verr.ToErrorResponse())
//	    return
//	}
//
// Field names in messages are the `query`/`param` tag names, so a missing
// search term reads "query parameter is required". The custom "notblank"
// tag rejects whitespace-only strings, which "required" accepts.
package validation
