// Package brokerage models a single client account at a broker: it accepts
// buy and sell orders for named securities, enforces the cash balance and
// current holdings as hard limits, and maintains a running portfolio with a
// weighted-average cost basis.
//
// The core functionalities include:
//   - Order Processing: Submitting buy/sell orders that are filled to the
//     maximum legal partial quantity (possibly zero) rather than rejected,
//     with whole-share quantities only.
//   - Cost Basis Tracking: A per-security FIFO queue of outstanding buy lots
//     drives the weighted-average price recomputation when shares are sold.
//   - Account Queries: Snapshots of current positions, the processed fill
//     log, cash balance, and derived figures such as realized gains.
//   - Order Streams: Encoding and decoding of fills in a human-readable,
//     version-controllable JSONL format, and importing orders from broker
//     JSON exports.
//
// This package serves as the foundational logic for the `bkr` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth: the fill log.
package brokerage
