// file: model/signup.go

package model

// SignupRequest is the single entity in the system: the three fields a
// visitor submits once. It exists for the duration of one submission call
// and is never persisted.
type SignupRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,basic_email"`
	Role  Role   `json:"role" validate:"required,oneof=client expert"`
}

// Delivery reports whether the outbound transmission actually happened or
// the success shown to the user was simulated.
type Delivery string

const (
	DeliveryDelivered Delivery = "delivered"
	DeliverySimulated Delivery = "simulated"
)

// SimulatedNotice is the advisory shown on the success panel when the
// transmission failed and the signup was only simulated.
const SimulatedNotice = "Demo mode: the signup service is not configured yet, so your submission was simulated instead of delivered."

// SignupResponse is the JSON API's answer once a submission resolves. The
// notice is attached only when delivery was simulated, so callers can tell
// true success from degraded success.
type SignupResponse struct {
	State    string   `json:"state"`
	Delivery Delivery `json:"delivery"`
	Notice   string   `json:"notice,omitempty"`
}
