package worker

import "context"

// Sink consumes the completion signals of the radio.
//
//go:generate mockgen -package mockworker -source=interface.go -destination=mock/mockworker.go *
type Sink interface {
	OnScanResultsReady(ctx context.Context)
	OnScanFailed(ctx context.Context)
}
