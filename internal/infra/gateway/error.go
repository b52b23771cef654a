package gateway

// UpstreamError carries the provider's raw response body for a rejected
// call, so payment endpoints can forward the rejection details to the
// client.
type UpstreamError struct {
	Op     string
	Status int
	Body   []byte
}

func (e *UpstreamError) Error() string {
	return e.Op + " rejected: " + string(e.Body)
}
