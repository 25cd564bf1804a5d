// Package datamanager runs the background worker that answers show queries.
//
// # Overview
//
// The interactive loop must not own store setup or listing latency beyond a
// single channel round-trip. Init starts exactly one worker goroutine that
// opens its own store connection; Query hands a request to it and blocks until
// the reply arrives.
//
//	interactive loop            worker goroutine
//	┌──────────────┐  request  ┌──────────────────┐
//	│ Query(text)  │──────────→│ store.ListAll()  │
//	│   (blocks)   │←──────────│                  │
//	└──────────────┘  response └──────────────────┘
//
// # Protocol
//
//   - The request is the query text. It is not interpreted yet; every query
//     lists all shows in store order.
//   - The response is the full show list, possibly empty.
//   - If the worker has exited (closed, store failure, or panic) Query returns
//     ok=false instead of a result. Callers treat that as "worker lost".
//
// Requests are served strictly one at a time in send order. There is no
// timeout and no cancellation: a stalled store stalls the caller.
//
// # Errors
//
// Init returns *InitError when the opener fails, panics, or returns no store.
// There is no degraded mode.
package datamanager
