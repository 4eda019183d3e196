// Copyright (c) 2025 Purplefish Digital.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response and domain types for the
rankdash API.

Result payloads (result_JSON) are json.RawMessage throughout: the
ranking payload is opaque to this system and passes between the store
and the client untouched. A NULL payload marshals as JSON null.

The generic resource endpoints (clients, keywords, client-keywords)
respond with rows scanned straight from the store, so only the result
and historical projections need explicit types here.
*/
package models
