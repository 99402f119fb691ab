// Package domain contains the core shopping model for shopcart: product
// variants, discount strategies, cart items, the cart itself and the receipt
// derived from it.
//
// The domain has no I/O: it does not read prompts, parse YAML or touch the
// filesystem. CLI, TUI and infra adapters map into/from these types.
package domain
