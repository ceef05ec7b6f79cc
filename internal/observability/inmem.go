package observability

import "sync"

type observe struct {
	Kind     string  `json:"kind"`
	Method   string  `json:"method,omitempty"`
	Route    string  `json:"route,omitempty"`
	Status   int     `json:"status,omitempty"`
	Resource string  `json:"resource,omitempty"`
	Op       string  `json:"op,omitempty"`
	OK       bool    `json:"ok"`
	DurMs    float64 `json:"dur_ms,omitempty"`
}

type Totals struct {
	Requests        int `json:"requests"`
	Mutations       int `json:"mutations"`
	Rejected        int `json:"rejected"`
	Published       int `json:"published"`
	PublishFailures int `json:"publish_failures"`
}

type Snapshot struct {
	Totals Totals    `json:"totals"`
	Recent []observe `json:"recent"`
}

// Inmem keeps counters and the last max observations.
type Inmem struct {
	mu     sync.Mutex
	last   []*observe
	max    int
	totals Totals
}

func NewInmem(max int) *Inmem {
	return &Inmem{
		max: max,
	}
}

func (m *Inmem) push(v *observe) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushLocked(v)
}

func (m *Inmem) pushLocked(v *observe) {
	m.last = append(m.last, v)
	if len(m.last) > m.max {
		m.last = m.last[len(m.last)-m.max:]
	}
}

func (m *Inmem) ObserveHTTP(method, route string, status int, durMs float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals.Requests++
	m.pushLocked(&observe{Kind: "http", Method: method, Route: route, Status: status, OK: status < 500, DurMs: durMs})
}

func (m *Inmem) ObserveMutation(resource, op string, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.totals.Mutations++
	} else {
		m.totals.Rejected++
	}
	m.pushLocked(&observe{Kind: "mutation", Resource: resource, Op: op, OK: ok})
}

func (m *Inmem) ObservePublish(durMs float64, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if ok {
		m.totals.Published++
	} else {
		m.totals.PublishFailures++
	}
	m.pushLocked(&observe{Kind: "publish", OK: ok, DurMs: durMs})
}

func (m *Inmem) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	recent := make([]observe, len(m.last))
	for i, o := range m.last {
		recent[i] = *o
	}
	return Snapshot{Totals: m.totals, Recent: recent}
}
