package observability

type Metrics interface {
	ObserveHTTP(method, route string, status int, durMs float64)
	ObserveMutation(resource, op string, ok bool)
	ObservePublish(durMs float64, ok bool)
}

type Noop struct{}

func NewNoop() Noop { return Noop{} }

func (Noop) ObserveHTTP(string, string, int, float64) {}
func (Noop) ObserveMutation(string, string, bool)     {}
func (Noop) ObservePublish(float64, bool)             {}
