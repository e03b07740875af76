// Package client contains the transport side of the user form.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic contract of the user REST API (see the Client
//     interface): ListUsers, CreateUser, UpdateUser, DeleteUser.
//  2. A concrete HTTP/JSON implementation (see HTTPClient) rooted at a
//     configurable base URL, using the paths under /api/user.
//
// # Error Handling
//
// A response outside 2xx is returned as *netx.StatusError (match it with
// errors.As). A request that never got a response wraps ErrUnavailable.
// Context cancellation is returned as the context's own error. Nothing is
// retried.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept
// context.Context and honor cancellation and deadlines in addition to the
// client-wide timeout.
package client
