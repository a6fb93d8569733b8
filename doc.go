/*
Package fastrouter provides an in-process HTTP request routing core: a
radix-trie-backed matching engine supporting exact, prefix, parametric,
and regex-delegated route families behind a single build-once, serve-many
API.

Features

  - Four match families: EXACT, PREFIX, PARAM ({name}/* capture), REGEX
  - Fixed method-bitmask dispatch (GET..TRACE, plus a match-all mask)
  - Deterministic priority and insertion-order tie-breaking
  - Host filtering, with "no host registered" matching any host
  - No locking on the hot path: Build once, Match from any number of
    goroutines concurrently
  - Optional atomic hot-reload (router.Hot) for zero-pause rebuilds
  - Optional match counters (router.Stats) with JSON and text accessors

Quick Start

	package main

	import (
	    "net/http"

	    "github.com/searchktools/fast-router/app"
	    "github.com/searchktools/fast-router/config"
	    "github.com/searchktools/fast-router/router"
	)

	func main() {
	    cfg := config.New()
	    application := app.New(cfg)

	    application.Handle("", "/hello", router.MethodGet, router.FamilyExact, 0,
	        func(w http.ResponseWriter, r *http.Request, params []router.Param) {
	            w.Write([]byte("Hello, World!"))
	        })

	    application.Run()
	}

Modules

The repository is organized into a handful of packages:

  - radix: the byte-keyed compressed trie underneath EXACT/PREFIX/PARAM
  - router: entry/bucket/index/matcher and the top-level Router API
  - config: flag-driven configuration plus a generic env-override Manager
  - app: wires a Router behind net/http for the demo binary

The repository contains no example program; the Quick Start above is
the only usage example.

For more on the matching rules, tie-breaking, and concurrency model, see
the router package's own documentation.
*/
package fastrouter
