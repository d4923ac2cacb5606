package v1handler

import (
	"time"

	"github.com/go-faster/jx"

	"wifiscan/internal/allocator"
	"wifiscan/pkg/domain"
)

func encodeResult(e *jx.Encoder, r domain.ScanResult) {
	e.ObjStart()
	e.FieldStart("bssid")
	e.Str(r.BSSID)
	e.FieldStart("ssid")
	e.Str(r.SSID)
	e.FieldStart("frequency")
	e.Int(r.Frequency)
	e.FieldStart("level")
	e.Int(r.Level)
	e.FieldStart("timestamp")
	e.Str(r.Timestamp.UTC().Format(time.RFC3339Nano))
	e.ObjEnd()
}

func encodeResults(e *jx.Encoder, results []domain.ScanResult) {
	e.ArrStart()
	for _, r := range results {
		encodeResult(e, r)
	}
	e.ArrEnd()
}

func encodeScanData(e *jx.Encoder, d domain.ScanData) {
	e.ObjStart()
	e.FieldStart("id")
	e.Int(d.ID)
	e.FieldStart("bucketsScanned")
	e.UInt32(d.BucketsScanned)
	e.FieldStart("results")
	encodeResults(e, d.Results)
	e.ObjEnd()
}

func encodeChannels(e *jx.Encoder, c domain.ChannelSpec) {
	e.FieldStart("band")
	e.Str(c.Band.String())
	e.FieldStart("frequencies")
	e.ArrStart()
	for _, f := range c.Frequencies {
		e.Int(f)
	}
	e.ArrEnd()
}

func encodeBucket(e *jx.Encoder, index int, b allocator.Bucket) {
	e.ObjStart()
	e.FieldStart("index")
	e.Int(index)
	e.FieldStart("period")
	e.Str(b.Period.String())
	if b.IsBackoff() {
		e.FieldStart("maxPeriod")
		e.Str(b.MaxPeriod.String())
		e.FieldStart("stepCount")
		e.Int(b.StepCount)
	}
	e.FieldStart("reportEvents")
	e.Str(b.ReportEvents.String())
	encodeChannels(e, b.Channels)
	e.FieldStart("requests")
	e.ArrStart()
	for _, id := range b.Requests {
		e.Str(id.String())
	}
	e.ArrEnd()
	e.ObjEnd()
}

func encodeSchedule(e *jx.Encoder, s *allocator.Schedule) {
	e.ObjStart()
	e.FieldStart("basePeriod")
	e.Str(s.BasePeriod.String())
	e.FieldStart("maxApPerScan")
	e.Int(s.MaxApPerScan)
	e.FieldStart("reportThresholdNumScans")
	e.Int(s.ReportThresholdNumScans)
	e.FieldStart("reportThresholdPercent")
	e.Int(s.ReportThresholdPercent)
	e.FieldStart("backoffBuckets")
	e.Int(s.NumBackoffBuckets())
	e.FieldStart("buckets")
	e.ArrStart()
	for i, b := range s.Buckets {
		encodeBucket(e, i, b)
	}
	e.ArrEnd()
	e.ObjEnd()
}
