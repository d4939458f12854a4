package services

import "github.com/localnerve/marketdb/internal/types"

// User-visible rejections
var (
	errStoreNotFound     = types.Reject(types.KindNotFound, "That store doesn't exist.")
	errTooFar            = types.Reject(types.KindTooFar, "That store is too far from you! (Must be within 30 miles from your location.)")
	errUnavailable       = types.Reject(types.KindUnavailable, "Product doesn't exist or you ordered too many.")
	errProductNotFound   = types.Reject(types.KindNotFound, "This product is not available at this location.")
	errWarehouseNotFound = types.Reject(types.KindNotFound, "That warehouse doesn't exist.")
	errUnitsNotPositive  = types.Reject(types.KindInvalidInput, "Number of units must be greater than zero.")
	errNegativePrice     = types.Reject(types.KindInvalidInput, "Price per unit cannot be negative.")
	errPriceNotFinite    = types.Reject(types.KindInvalidInput, "Price per unit must be a finite number.")
	errNegativeStock     = types.Reject(types.KindInvalidInput, "Number of units cannot be negative.")
)
