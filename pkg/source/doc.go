// Package source fetches user collections from a resource identifier.
//
// A Fetcher makes exactly one attempt per call. It picks a Transport from the
// identifier's scheme, opens the resource, and decodes the body as a JSON
// array of user records. Transports share a small contract: the Response
// reports whether the resource was retrieved (OK), a status text when it was
// not, and decodes its body on demand.
//
// Built-in transports:
//
//   - HTTPTransport for http:// and https:// URLs (GET, 2xx is OK)
//   - FileTransport for bare paths and file:// URLs
//   - S3Transport for s3://bucket/key objects
//
// A non-OK response becomes a *ReadError carrying "Failed to fetch data" and
// the status text. Transport and decoding failures are returned as wrapped
// sentinel errors for the caller to classify.
package source
