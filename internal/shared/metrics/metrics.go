package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	decodeStartedTotal   atomic.Uint64
	decodeCompletedTotal atomic.Uint64
	decodeFailedTotal    atomic.Uint64

	decodeDuration = newHistogram([]float64{100, 250, 500, 1000, 2000, 5000, 10000, 30000, 60000})
)

// IncDecodeStarted increments the started counter.
func IncDecodeStarted() {
	decodeStartedTotal.Add(1)
}

// IncDecodeCompleted increments the completed counter.
func IncDecodeCompleted() {
	decodeCompletedTotal.Add(1)
}

// IncDecodeFailed increments the failed counter.
func IncDecodeFailed() {
	decodeFailedTotal.Add(1)
}

// ObserveDecodeDurationMs records a document decode duration in milliseconds.
func ObserveDecodeDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	decodeDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "decode_started_total", "Total document decodes started", decodeStartedTotal.Load())
	writeCounter(&buf, "decode_completed_total", "Total document decodes completed", decodeCompletedTotal.Load())
	writeCounter(&buf, "decode_failed_total", "Total document decodes failed", decodeFailedTotal.Load())
	writeHistogram(&buf, "decode_duration_ms", "Document decode duration in milliseconds", decodeDuration.Snapshot())
	return buf.String()
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)+1),
	}
}

func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	idx := len(h.buckets)
	for i, upper := range h.buckets {
		if value <= upper {
			idx = i
			break
		}
	}
	h.counts[idx]++
	h.sum += value
	h.count++
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	counts := make([]uint64, len(h.counts))
	copy(counts, h.counts)
	return histogramSnapshot{
		buckets: h.buckets,
		counts:  counts,
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	cumulative := uint64(0)
	for i, upper := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=%q} %d\n", name, strconv.FormatFloat(upper, 'f', -1, 64), cumulative)
	}
	cumulative += snap.counts[len(snap.buckets)]
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, cumulative)
	fmt.Fprintf(buf, "%s_sum %s\n", name, strconv.FormatFloat(snap.sum, 'f', -1, 64))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}
