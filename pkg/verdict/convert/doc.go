// Package convert holds the structural conversions between Maybe, Result
// and Review. Every conversion is a total, pure projection: it never fails
// and keeps no hidden state. Conversions live here, outside the three type
// packages, so those packages stay free of each other.
package convert
