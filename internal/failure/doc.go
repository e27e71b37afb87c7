// Package failure classifies request failures into public responses.
//
// Every failure raised while serving a request is an [InternalFailure]: a
// [Kind] from a closed set, a detail message and an optional cause with a
// captured stack. The full failure is written only to the server log by
// [Report]. What the client sees is a [PublicError] taken from a fixed policy
// table keyed by Kind, so nothing from the detail, the cause, the
// configuration or the process environment can reach a response body.
package failure
