// Package models defines the core domain models for TastyHub.
//
// # Catalog Models
//
// Static, immutable data authored with the application:
//   - MenuItem: a dish or drink that can be ordered
//   - Deal: a promotional offer with a declarative DealRule
//   - Location: a restaurant location customers can reserve at
//
// # Per-User Models
//
// Data owned by a signed-in user:
//   - CartItem: a line in the shopping cart, price baked in at add time
//   - Reservation: a table booking at a Location
//   - User: account and profile
//
// # Design Principles
//
// 1. **Catalog data is read-only**: lookups return copies, nothing mutates items at runtime
// 2. **Prices are decimals**: amounts use shopspring/decimal, never float64
// 3. **Deals are data**: slot rules live on the Deal, the engine interprets them generically
// 4. **IDs over pointers**: relationships use ID strings to avoid circular references
package models
