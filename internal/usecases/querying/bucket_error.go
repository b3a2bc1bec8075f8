package querying

import (
	"errors"
	"fmt"
	"time"

	"github.com/vfg2006/sales-range-proxy/infrastructure/integrator/mindbody/mindbodyclient"
	"github.com/vfg2006/sales-range-proxy/internal/domain"
)

// ErrorKind classifica a falha de um bucket
type ErrorKind int

const (
	KindUpstreamHTTP ErrorKind = iota + 1
	KindUpstreamTransport
	KindMissingField
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindUpstreamHTTP:
		return "upstream_http"
	case KindUpstreamTransport:
		return "upstream_transport"
	case KindMissingField:
		return "missing_field"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// BucketError é o marcador de erro que ocupa a posição de um bucket em data
type BucketError struct {
	Message     string    `json:"error"`
	Day         string    `json:"day,omitempty"`
	Status      int       `json:"status,omitempty"`
	Description string    `json:"description,omitempty"`
	Kind        ErrorKind `json:"-"`
}

func newUpstreamError(bucket domain.DayBucket, err error) *BucketError {
	var httpErr *mindbodyclient.HTTPError
	if errors.As(err, &httpErr) {
		return &BucketError{
			Message:     "Failed to fetch",
			Day:         dayOf(bucket),
			Status:      httpErr.StatusCode,
			Description: httpErr.Status,
			Kind:        KindUpstreamHTTP,
		}
	}

	return &BucketError{
		Message:     "Error occurred when fetching",
		Day:         dayOf(bucket),
		Description: err.Error(),
		Kind:        KindUpstreamTransport,
	}
}

func newMissingFieldError(bucket domain.DayBucket, field string) *BucketError {
	return &BucketError{
		Message: fmt.Sprintf("Invalid property: %s", field),
		Day:     dayOf(bucket),
		Kind:    KindMissingField,
	}
}

func newPanicError(bucket domain.DayBucket, recovered any) *BucketError {
	return &BucketError{
		Message:     "Unexpected error when fetching",
		Day:         dayOf(bucket),
		Description: fmt.Sprint(recovered),
		Kind:        KindPanic,
	}
}

func dayOf(bucket domain.DayBucket) string {
	return bucket.Day().Format(time.DateOnly)
}
