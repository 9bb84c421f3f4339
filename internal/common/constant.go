package common

// RequestIDHeaderName is the HTTP header carrying the client-generated
// correlation id on mutating requests.
const RequestIDHeaderName = "X-Request-Id"
