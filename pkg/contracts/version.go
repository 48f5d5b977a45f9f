package contracts

// Version is the contract version for the rkcli API surface.
// Bump when the shape of domain types or API responses changes.
const Version = "1.0.0"
