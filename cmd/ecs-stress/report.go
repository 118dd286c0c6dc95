package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/slotecs/ecs"
)

type Report struct {
	// Configuration
	Duration time.Duration
	Capacity int
	Rate     float64
	Profile  string

	// Results
	TotalFrames int64
	TotalTime   time.Duration
	FrameTime   Stats
	MoveTime    Stats
	QueryTime   Stats
	FlushTime   Stats

	Created   int
	Destroyed int
	Expired   int
	Rejected  int
	Tagged    int
	Final     ecs.StorageStats

	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

func (r *Report) collect(c *churn) {
	r.MoveTime = c.moveTime
	r.QueryTime = c.queryTime
	r.FlushTime = c.flushTime
	r.Created = c.created
	r.Destroyed = c.destroyed
	r.Expired = c.expired
	r.Rejected = c.rejected
	r.Tagged = c.tagged
	r.Final = c.storage.CollectStats()
}

// Stats accumulates duration samples without retaining them.
type Stats struct {
	Min   time.Duration
	Max   time.Duration
	Total time.Duration
	Count int64
}

func (s *Stats) Add(d time.Duration) {
	if s.Count == 0 || d < s.Min {
		s.Min = d
	}
	if d > s.Max {
		s.Max = d
	}
	s.Total += d
	s.Count++
}

func (s Stats) Avg() time.Duration {
	if s.Count == 0 {
		return 0
	}
	return s.Total / time.Duration(s.Count)
}

const reportTemplate = `
# ECS Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Capacity:** {{.Capacity}}
- **Turnover Rate:** {{.Rate}}
- **Profile:** {{.Profile}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Test Time:** {{.TotalTime}}
{{template "stats" (stat "Frame" .FrameTime)}}
{{template "stats" (stat "Move (Query + Get)" .MoveTime)}}
{{template "stats" (stat "QueryTags" .QueryTime)}}
{{template "stats" (stat "Flush" .FlushTime)}}

## Churn
- Created:   {{.Created}}
- Destroyed: {{.Destroyed}}
- Expired:   {{.Expired}}
- Rejected:  {{.Rejected}}
- Tagged:    {{.Tagged}}

## Final Storage
- Live Entities:   {{.Final.LiveEntities}} / {{.Final.Capacity}}
- Free Handles:    {{.Final.FreeHandles}}
- High-Water Mark: {{.Final.HighWaterMark}}
{{range .Final.Components}}- component {{.Name}}: {{.EntityCount}}
{{end}}{{range .Final.Tags}}- tag {{.Name}}: {{.EntityCount}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Sys Memory:     {{.MemStatsStart.Sys}} (start) -> {{.MemStatsEnd.Sys}} (end) -> delta: {{bsub .MemStatsEnd.Sys .MemStatsStart.Sys}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
{{- define "stats"}}- **{{.Name}}:** avg {{.Stats.Avg}}, min {{.Stats.Min}}, max {{.Stats.Max}} ({{.Stats.Count}} samples){{end}}`

type namedStats struct {
	Name  string
	Stats Stats
}

var reportFuncs = template.FuncMap{
	"stat": func(name string, s Stats) namedStats {
		return namedStats{Name: name, Stats: s}
	},
	"bsub": func(a, b uint64) int64 {
		return int64(a) - int64(b)
	},
	"usub": func(a, b uint32) uint32 {
		return a - b
	},
	"ns": func(ns uint64) string {
		return time.Duration(ns).String()
	},
}

func (r *Report) Generate(w io.Writer) error {
	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
