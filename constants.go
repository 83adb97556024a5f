package scaler

// Worker limits
const (
	maxWorkers = 256 // Maximum goroutines per filter pass
)

// Plane names used in error messages, in Y, U, V order.
var planeNames = [3]string{"Y", "U", "V"}
