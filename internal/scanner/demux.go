package scanner

import (
	"context"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"wifiscan/internal/allocator"
	"wifiscan/pkg/channels"
	"wifiscan/pkg/domain"
	"wifiscan/pkg/logger"
)

// installation is an installed schedule together with the requests it was
// built from.
type installation struct {
	schedule *allocator.Schedule
	routes   []route
}

type route struct {
	request  domain.ScanRequest
	listener RequestListener
	bucket   int
	channels *channels.Collection
}

// scanned reports whether the route's bucket is in mask. A zero mask is unknown
// and matches every bucket.
func (rt route) scanned(mask uint32) bool {
	return mask == 0 || mask&(1<<uint(rt.bucket)) != 0
}

func newInstallation(s *allocator.Schedule, requests []BackgroundRequest) *installation {
	inst := &installation{schedule: s, routes: make([]route, 0, len(requests))}
	for _, r := range requests {
		idx, _, ok := s.BucketFor(r.Request.ID)
		if !ok {
			continue
		}
		c := channels.New()
		c.AddSpec(r.Request.Channels)
		inst.routes = append(inst.routes, route{
			request:  r.Request,
			listener: r.Listener,
			bucket:   idx,
			channels: c,
		})
	}

	return inst
}

// demux splits the executor's background events back to every request of
// an installation.
type demux struct {
	ctx       context.Context //nolint: containedctx
	inst      *installation
	delivered metric.Int64Counter
}

func (d *demux) OnFullResult(result domain.ScanResult, buckets uint32) {
	for _, rt := range d.inst.routes {
		if rt.listener == nil || !rt.request.ReportEvents.Has(domain.ReportFullResult) {
			continue
		}
		if !rt.scanned(buckets) || !rt.channels.Contains(result.Frequency) {
			continue
		}
		rt.listener.OnFullResult(rt.request.ID, result)
	}
}

func (d *demux) OnBatchReady(batch []domain.ScanData) {
	d.dispatch(batch)
}

func (d *demux) OnPaused(buffered []domain.ScanData) {
	d.dispatch(buffered)
}

func (d *demux) OnRestarted() {
	logger.Debug(d.ctx, "background scanning restarted", zap.Int("requests", len(d.inst.routes)))
}

func (d *demux) dispatch(batch []domain.ScanData) {
	for _, rt := range d.inst.routes {
		if rt.listener == nil {
			continue
		}
		filtered := filterResults(batch, rt)
		if len(filtered) == 0 {
			continue
		}
		rt.listener.OnResults(rt.request.ID, filtered)
		d.delivered.Add(d.ctx, int64(len(filtered)))
	}
}

// filterResults keeps the generations that scanned the request's bucket and,
// within them, the results on the request's channels up to its BSSID limit.
func filterResults(batch []domain.ScanData, rt route) []domain.ScanData {
	var out []domain.ScanData
	for _, data := range batch {
		if !rt.scanned(data.BucketsScanned) {
			continue
		}

		var results []domain.ScanResult
		for _, r := range data.Results {
			if !rt.channels.Contains(r.Frequency) {
				continue
			}
			results = append(results, r)
			if rt.request.MaxBSSIDs > 0 && len(results) >= rt.request.MaxBSSIDs {
				break
			}
		}
		out = append(out, domain.ScanData{ID: data.ID, BucketsScanned: data.BucketsScanned, Results: results})
	}

	return out
}
