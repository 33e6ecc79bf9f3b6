// Package order holds the order lifecycle aggregate and its two state
// machines. OrderStatus runs forward through draft, submitted, acknowledged,
// processing, shipped, and delivered; FulfillmentStatus tracks how much of the
// ordered quantity has actually shipped. Incoming documents trigger the
// transitions, and illegal ones are rejected without mutating the aggregate.
package order
